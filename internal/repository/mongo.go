package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/deppfellow/stroski-api/internal/database"
	"github.com/deppfellow/stroski-api/internal/model"
)

// insertion order; ObjectIDs grow monotonically per process
var sortByID = options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})

type expenseDocument struct {
	ID        bson.ObjectID `bson:"_id,omitempty"`
	Name      string        `bson:"name"`
	Amount    float64       `bson:"amount"`
	CreatedAt time.Time     `bson:"createdAt"`
}

func (d expenseDocument) model() model.Expense {
	return model.Expense{
		ID:        d.ID.Hex(),
		Name:      d.Name,
		Amount:    d.Amount,
		CreatedAt: d.CreatedAt,
	}
}

type employeeDocument struct {
	ID        bson.ObjectID `bson:"_id,omitempty"`
	Ime       string        `bson:"ime"`
	Priimek   string        `bson:"priimek"`
	Email     string        `bson:"email"`
	Polozaj   string        `bson:"polozaj"`
	CreatedAt time.Time     `bson:"createdAt"`
}

func (d employeeDocument) model() model.Employee {
	return model.Employee{
		ID:        d.ID.Hex(),
		Ime:       d.Ime,
		Priimek:   d.Priimek,
		Email:     d.Email,
		Polozaj:   d.Polozaj,
		CreatedAt: d.CreatedAt,
	}
}

type reportDocument struct {
	ID      bson.ObjectID  `bson:"_id,omitempty"`
	Naslov  string         `bson:"naslov"`
	Datum   time.Time      `bson:"datum"`
	Vsebina string         `bson:"vsebina"`
	Avtor   *bson.ObjectID `bson:"avtor,omitempty"`
}

func (d reportDocument) model() model.FinancialReport {
	report := model.FinancialReport{
		ID:      d.ID.Hex(),
		Naslov:  d.Naslov,
		Datum:   d.Datum,
		Vsebina: d.Vsebina,
	}
	if d.Avtor != nil {
		report.Avtor = d.Avtor.Hex()
	}
	return report
}

// findAll decodes every document of a collection, in insertion order.
func findAll[D any](ctx context.Context, collection *mongo.Collection) ([]D, error) {
	cursor, err := collection.Find(ctx, bson.D{}, sortByID)
	if err != nil {
		return nil, fmt.Errorf("error fetching %s: %w", collection.Name(), err)
	}
	defer cursor.Close(ctx)

	var docs []D
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", collection.Name(), err)
	}
	return docs, nil
}

// findByID returns notFound for malformed ids as well as missing documents.
func findByID[D any](ctx context.Context, collection *mongo.Collection, id string, notFound func() error) (*D, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, notFound()
	}

	var doc D
	err = collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, notFound()
	}
	if err != nil {
		return nil, fmt.Errorf("error fetching %s %s: %w", collection.Name(), id, err)
	}
	return &doc, nil
}

// MongoExpenseRepository stores expenses in the stroski collection.
type MongoExpenseRepository struct {
	collection *mongo.Collection
}

func NewMongoExpenseRepository(db *mongo.Database) *MongoExpenseRepository {
	return &MongoExpenseRepository{collection: db.Collection(database.CollectionExpenses)}
}

func (r *MongoExpenseRepository) Create(ctx context.Context, expense *model.Expense) error {
	doc := expenseDocument{
		ID:        bson.NewObjectID(),
		Name:      expense.Name,
		Amount:    expense.Amount,
		CreatedAt: expense.CreatedAt,
	}

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("error creating expense: %w", err)
	}

	expense.ID = doc.ID.Hex()
	return nil
}

func (r *MongoExpenseRepository) List(ctx context.Context) ([]model.Expense, error) {
	docs, err := findAll[expenseDocument](ctx, r.collection)
	if err != nil {
		return nil, err
	}

	expenses := make([]model.Expense, 0, len(docs))
	for _, doc := range docs {
		expenses = append(expenses, doc.model())
	}
	return expenses, nil
}

func (r *MongoExpenseRepository) GetByID(ctx context.Context, id string) (*model.Expense, error) {
	doc, err := findByID[expenseDocument](ctx, r.collection, id, errExpenseNotFound)
	if err != nil {
		return nil, err
	}
	expense := doc.model()
	return &expense, nil
}

// MongoEmployeeRepository stores employees in the zaposleni collection.
type MongoEmployeeRepository struct {
	collection *mongo.Collection
}

func NewMongoEmployeeRepository(db *mongo.Database) *MongoEmployeeRepository {
	return &MongoEmployeeRepository{collection: db.Collection(database.CollectionEmployees)}
}

func (r *MongoEmployeeRepository) Create(ctx context.Context, employee *model.Employee) error {
	doc := employeeDocument{
		ID:        bson.NewObjectID(),
		Ime:       employee.Ime,
		Priimek:   employee.Priimek,
		Email:     employee.Email,
		Polozaj:   employee.Polozaj,
		CreatedAt: employee.CreatedAt,
	}

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("error creating employee: %w", err)
	}

	employee.ID = doc.ID.Hex()
	return nil
}

func (r *MongoEmployeeRepository) List(ctx context.Context) ([]model.Employee, error) {
	docs, err := findAll[employeeDocument](ctx, r.collection)
	if err != nil {
		return nil, err
	}

	employees := make([]model.Employee, 0, len(docs))
	for _, doc := range docs {
		employees = append(employees, doc.model())
	}
	return employees, nil
}

func (r *MongoEmployeeRepository) GetByID(ctx context.Context, id string) (*model.Employee, error) {
	doc, err := findByID[employeeDocument](ctx, r.collection, id, errEmployeeNotFound)
	if err != nil {
		return nil, err
	}
	employee := doc.model()
	return &employee, nil
}

// MongoReportRepository stores reports in the financna_porocila collection.
// The author is kept as an ObjectID reference into zaposleni.
type MongoReportRepository struct {
	collection *mongo.Collection
}

func NewMongoReportRepository(db *mongo.Database) *MongoReportRepository {
	return &MongoReportRepository{collection: db.Collection(database.CollectionReports)}
}

func (r *MongoReportRepository) Create(ctx context.Context, report *model.FinancialReport) error {
	doc := reportDocument{
		ID:      bson.NewObjectID(),
		Naslov:  report.Naslov,
		Datum:   report.Datum,
		Vsebina: report.Vsebina,
	}

	if report.Avtor != "" {
		avtor, err := bson.ObjectIDFromHex(report.Avtor)
		if err != nil {
			return fmt.Errorf("invalid author reference %q: %w", report.Avtor, err)
		}
		doc.Avtor = &avtor
	}

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("error creating report: %w", err)
	}

	report.ID = doc.ID.Hex()
	return nil
}

func (r *MongoReportRepository) List(ctx context.Context) ([]model.FinancialReport, error) {
	docs, err := findAll[reportDocument](ctx, r.collection)
	if err != nil {
		return nil, err
	}

	reports := make([]model.FinancialReport, 0, len(docs))
	for _, doc := range docs {
		reports = append(reports, doc.model())
	}
	return reports, nil
}
