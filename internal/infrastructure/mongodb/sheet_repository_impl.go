package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/expensio/expensio/internal/domain/entity"
	"github.com/expensio/expensio/internal/domain/repository"
)

const colSheets = "expense_sheets"

// SheetRepository stores one document per sheet with the expense list
// embedded. All expense mutations are single update commands using array
// operators ($push, positional $ replace, $pull), so concurrent calls on the
// same sheet serialize at the document level instead of racing through a
// read-modify-write cycle.
type SheetRepository struct {
	col *mongo.Collection
}

func NewSheetRepository(db *mongo.Database) *SheetRepository {
	return &SheetRepository{col: db.Collection(colSheets)}
}

// EnsureIndexes creates the lookup indexes. Safe to call on every start.
func (r *SheetRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.col.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}},
		},
	})
	if err != nil {
		return fmt.Errorf("mongodb: create sheet indexes: %w", err)
	}
	return nil
}

func ownedFilter(id, owner string) bson.M {
	return bson.M{"id": id, "user_id": owner}
}

func (r *SheetRepository) Create(ctx context.Context, s *entity.ExpenseSheet) error {
	if s.Expenses == nil {
		s.Expenses = []entity.ExpenseItem{}
	}
	if s.Budgets == nil {
		s.Budgets = []entity.Budget{}
	}
	if _, err := r.col.InsertOne(ctx, s); err != nil {
		return fmt.Errorf("mongodb: create sheet: %w", err)
	}
	return nil
}

func (r *SheetRepository) ListByOwner(ctx context.Context, owner string) ([]*entity.ExpenseSheet, error) {
	cur, err := r.col.Find(ctx, bson.M{"user_id": owner},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("mongodb: list sheets: %w", err)
	}
	defer cur.Close(ctx)

	sheets := []*entity.ExpenseSheet{}
	if err := cur.All(ctx, &sheets); err != nil {
		return nil, fmt.Errorf("mongodb: decode sheets: %w", err)
	}
	return sheets, nil
}

func (r *SheetRepository) Get(ctx context.Context, id, owner string) (*entity.ExpenseSheet, error) {
	var s entity.ExpenseSheet
	err := r.col.FindOne(ctx, ownedFilter(id, owner)).Decode(&s)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("mongodb: get sheet: %w", err)
	}
	return &s, nil
}

func (r *SheetRepository) Delete(ctx context.Context, id, owner string) error {
	res, err := r.col.DeleteOne(ctx, ownedFilter(id, owner))
	if err != nil {
		return fmt.Errorf("mongodb: delete sheet: %w", err)
	}
	if res.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *SheetRepository) AddExpense(ctx context.Context, id, owner string, item entity.ExpenseItem) (*entity.ExpenseSheet, error) {
	update := bson.M{
		"$push": bson.M{"expenses": item},
		"$set":  bson.M{"updated_at": time.Now().UTC()},
	}
	return r.mutate(ctx, ownedFilter(id, owner), update, "add expense")
}

func (r *SheetRepository) UpdateExpense(ctx context.Context, id, owner, expenseID string, item entity.ExpenseItem) (*entity.ExpenseSheet, error) {
	item.ID = expenseID
	filter := ownedFilter(id, owner)
	filter["expenses.id"] = expenseID
	update := bson.M{
		"$set": bson.M{
			"expenses.$": item,
			"updated_at": time.Now().UTC(),
		},
	}
	sheet, err := r.mutate(ctx, filter, update, "update expense")
	if errors.Is(err, repository.ErrNotFound) {
		// Filter misses when the sheet, the ownership or the item does not
		// match; look at the sheet alone to report the right one.
		if _, getErr := r.Get(ctx, id, owner); getErr == nil {
			return nil, repository.ErrExpenseNotFound
		}
		return nil, repository.ErrNotFound
	}
	return sheet, err
}

func (r *SheetRepository) RemoveExpense(ctx context.Context, id, owner, expenseID string) (*entity.ExpenseSheet, error) {
	update := bson.M{
		"$pull": bson.M{"expenses": bson.M{"id": expenseID}},
		"$set":  bson.M{"updated_at": time.Now().UTC()},
	}
	// Removing an id that is not present still matches the sheet filter, so
	// this only fails when the sheet itself is missing or foreign.
	return r.mutate(ctx, ownedFilter(id, owner), update, "remove expense")
}

func (r *SheetRepository) mutate(ctx context.Context, filter, update bson.M, op string) (*entity.ExpenseSheet, error) {
	var s entity.ExpenseSheet
	err := r.col.FindOneAndUpdate(ctx, filter, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&s)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("mongodb: %s: %w", op, err)
	}
	return &s, nil
}

var _ repository.SheetRepository = (*SheetRepository)(nil)
