// Package repository handles all interactions with the record store.
//
// Each record type has one interface and one implementation per store
// driver (mongo, postgres, memory). NewRepositories picks the
// implementations that match the connected database, so services never
// know which driver is behind them.
package repository
