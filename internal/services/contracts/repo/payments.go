package repo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"rentals/internal/modkit/repokit"
	perr "rentals/internal/platform/errors"
	"rentals/internal/services/contracts/domain"
)

// paymentDoc is the stored shape of a payment record
type paymentDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	ContractID  string             `bson:"contractId"`
	Description string             `bson:"description"`
	Value       float64            `bson:"value"`
	Time        time.Time          `bson:"time"`
	IsImported  bool               `bson:"isImported"`
	CreatedAt   time.Time          `bson:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt"`
	IsDeleted   bool               `bson:"isDeleted"`
}

func (d paymentDoc) toDomain() domain.Payment {
	return domain.Payment{
		ID:          d.ID.Hex(),
		ContractID:  d.ContractID,
		Description: d.Description,
		Value:       d.Value,
		Time:        d.Time,
		IsImported:  d.IsImported,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
		IsDeleted:   d.IsDeleted,
	}
}

// PaymentsMongo is the binder for the Mongo-backed payments repo
type PaymentsMongo struct{}

// NewPaymentsMongo returns the binder used by the service layer
func NewPaymentsMongo() repokit.Binder[PaymentsRepo] { return PaymentsMongo{} }

// Bind attaches the repo to a live database handle
func (PaymentsMongo) Bind(db repokit.Database) PaymentsRepo {
	return &paymentsRepo{coll: db.Collection(paymentsCollection)}
}

type paymentsRepo struct {
	coll repokit.Collection
}

func (r *paymentsRepo) Insert(ctx context.Context, p domain.Payment) (domain.Payment, error) {
	doc := paymentDoc{
		ID:          primitive.NewObjectID(),
		ContractID:  p.ContractID,
		Description: p.Description,
		Value:       p.Value,
		Time:        p.Time,
		IsImported:  p.IsImported,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
		IsDeleted:   false,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return domain.Payment{}, perr.FromMongo(err, "insert payment")
	}
	return doc.toDomain(), nil
}

func (r *paymentsRepo) SoftDelete(ctx context.Context, paymentID string, now time.Time) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(paymentID)
	if err != nil {
		return 0, nil
	}
	update := bson.M{"$set": bson.M{"isDeleted": true, "updatedAt": now}}
	_, modified, err := r.coll.UpdateOne(ctx, livePayment(oid), update)
	if err != nil {
		return 0, perr.FromMongo(err, "delete payment")
	}
	return modified, nil
}

func (r *paymentsRepo) Update(ctx context.Context, paymentID string, set PaymentSet, now time.Time) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(paymentID)
	if err != nil {
		return 0, nil
	}
	_, modified, err := r.coll.UpdateOne(ctx, livePayment(oid), bson.M{"$set": buildPatchSet(set, now)})
	if err != nil {
		return 0, perr.FromMongo(err, "update payment")
	}
	return modified, nil
}

// livePayment matches one payment that has not been soft-deleted
// deleted records must stay untouchable, mutating one again would refresh
// updatedAt and report a modification where the caller expects a miss
func livePayment(oid primitive.ObjectID) bson.M {
	return bson.M{"_id": oid, "isDeleted": false}
}

func (r *paymentsRepo) Aggregate(ctx context.Context, contractID string, w domain.Window) (domain.PaymentAggregate, error) {
	var rows []struct {
		Sum   float64      `bson:"sum"`
		Items []paymentDoc `bson:"items"`
	}
	if err := r.coll.Aggregate(ctx, buildAggregatePipeline(contractID, w), &rows); err != nil {
		return domain.PaymentAggregate{}, perr.FromMongo(err, "aggregate payments")
	}
	// nothing matched, an empty grouping still answers {sum:0, items:[]}
	if len(rows) == 0 {
		return domain.PaymentAggregate{Sum: 0, Items: []domain.Payment{}}, nil
	}
	items := make([]domain.Payment, 0, len(rows[0].Items))
	for _, d := range rows[0].Items {
		items = append(items, d.toDomain())
	}
	return domain.PaymentAggregate{Sum: rows[0].Sum, Items: items}, nil
}

// buildPatchSet renders the partial update, only present fields travel
func buildPatchSet(set PaymentSet, now time.Time) bson.M {
	out := bson.M{"updatedAt": now}
	if set.Description != nil {
		out["description"] = *set.Description
	}
	if set.Value != nil {
		out["value"] = *set.Value
	}
	if set.Time != nil {
		out["time"] = *set.Time
	}
	return out
}

// buildAggregatePipeline matches live payments for one contract inside w,
// sorts by descending insertion order and folds everything into one group
func buildAggregatePipeline(contractID string, w domain.Window) mongo.Pipeline {
	match := bson.D{
		{Key: "contractId", Value: contractID},
		{Key: "isDeleted", Value: false},
	}
	if w.Start != nil || w.End != nil {
		window := bson.D{}
		if w.Start != nil {
			window = append(window, bson.E{Key: "$gte", Value: *w.Start})
		}
		if w.End != nil {
			window = append(window, bson.E{Key: "$lte", Value: *w.End})
		}
		match = append(match, bson.E{Key: "time", Value: window})
	}
	return mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: -1}}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$contractId"},
			{Key: "sum", Value: bson.D{{Key: "$sum", Value: "$value"}}},
			{Key: "items", Value: bson.D{{Key: "$push", Value: "$$ROOT"}}},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "sum", Value: 1},
			{Key: "items", Value: 1},
		}}},
	}
}
