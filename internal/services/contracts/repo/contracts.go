package repo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"rentals/internal/modkit/repokit"
	perr "rentals/internal/platform/errors"
	"rentals/internal/services/contracts/domain"
)

// contractDoc is the stored shape of a rental contract
type contractDoc struct {
	ID      primitive.ObjectID `bson:"_id,omitempty"`
	Details string             `bson:"details"`
	Address string             `bson:"address"`
}

func (d contractDoc) toDomain() domain.Contract {
	return domain.Contract{
		ID:      d.ID.Hex(),
		Details: d.Details,
		Address: d.Address,
	}
}

// ContractsMongo is the binder for the Mongo-backed contracts repo
type ContractsMongo struct{}

// NewContractsMongo returns the binder used by the service layer
func NewContractsMongo() repokit.Binder[ContractsRepo] { return ContractsMongo{} }

// Bind attaches the repo to a live database handle
func (ContractsMongo) Bind(db repokit.Database) ContractsRepo {
	return &contractsRepo{coll: db.Collection(contractsCollection)}
}

type contractsRepo struct {
	coll repokit.Collection
}

func (r *contractsRepo) All(ctx context.Context) ([]domain.Contract, error) {
	var docs []contractDoc
	if err := r.coll.FindAll(ctx, bson.M{}, &docs); err != nil {
		return nil, perr.FromMongo(err, "list contracts")
	}
	out := make([]domain.Contract, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out, nil
}

func (r *contractsRepo) ByID(ctx context.Context, id string) (domain.Contract, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// a malformed id can match nothing, report it the same way as a miss
		return domain.Contract{}, contractNotFound(id)
	}
	var doc contractDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}, &doc); err != nil {
		if perr.IsNoDocuments(err) {
			return domain.Contract{}, contractNotFound(id)
		}
		return domain.Contract{}, perr.FromMongo(err, "fetch contract")
	}
	return doc.toDomain(), nil
}

func (r *contractsRepo) Count(ctx context.Context) (int64, error) {
	n, err := r.coll.EstimatedCount(ctx)
	if err != nil {
		return 0, perr.FromMongo(err, "count contracts")
	}
	return n, nil
}

func (r *contractsRepo) SeedMany(ctx context.Context, contracts []domain.Contract) error {
	docs := make([]any, 0, len(contracts))
	for _, c := range contracts {
		docs = append(docs, contractDoc{Details: c.Details, Address: c.Address})
	}
	if err := r.coll.InsertMany(ctx, docs); err != nil {
		return perr.FromMongo(err, "seed contracts")
	}
	return nil
}

func contractNotFound(id string) error {
	return perr.NotFoundf("contractId = '%s' not found in database", id)
}
