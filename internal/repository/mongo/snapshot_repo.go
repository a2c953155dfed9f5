package mongo

import (
	"alcyxob/gym-coach/internal/domain"
	"alcyxob/gym-coach/internal/repository"
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names
const (
	trainerCollectionName  = "trainers"
	clientCollectionName   = "clients"
	routineCollectionName  = "routines"
	planCollectionName     = "plans"
	progressCollectionName = "progress"
)

// ordered stores an entity flat, plus its position in the in-memory enumeration order.
type ordered[T any] struct {
	Seq int `bson:"seq"`
	Doc T   `bson:",inline"`
}

// mongoSnapshotRepository implements repository.SnapshotRepository with one collection per
// entity kind. Entities are never deleted, so saving is an upsert of every document.
type mongoSnapshotRepository struct {
	trainers *mongo.Collection
	clients  *mongo.Collection
	routines *mongo.Collection
	plans    *mongo.Collection
	progress *mongo.Collection
}

// NewMongoSnapshotRepository creates a new instance of mongoSnapshotRepository.
func NewMongoSnapshotRepository(db *mongo.Database) repository.SnapshotRepository {
	return &mongoSnapshotRepository{
		trainers: db.Collection(trainerCollectionName),
		clients:  db.Collection(clientCollectionName),
		routines: db.Collection(routineCollectionName),
		plans:    db.Collection(planCollectionName),
		progress: db.Collection(progressCollectionName),
	}
}

// Save upserts every entity of the snapshot by _id.
func (r *mongoSnapshotRepository) Save(ctx context.Context, snap *repository.Snapshot) error {
	if err := saveAll(ctx, r.trainers, snap.Trainers, func(t domain.Trainer) string { return t.ID }); err != nil {
		return fmt.Errorf("save trainers: %w", err)
	}
	if err := saveAll(ctx, r.clients, snap.Clients, func(c domain.Client) string { return c.ID }); err != nil {
		return fmt.Errorf("save clients: %w", err)
	}
	if err := saveAll(ctx, r.routines, snap.Routines, func(rt domain.Routine) string { return rt.ID }); err != nil {
		return fmt.Errorf("save routines: %w", err)
	}
	if err := saveAll(ctx, r.plans, snap.Plans, func(p domain.Plan) string { return p.ID }); err != nil {
		return fmt.Errorf("save plans: %w", err)
	}
	if err := saveAll(ctx, r.progress, snap.Progress, func(p domain.ProgressRecord) string { return p.ID }); err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	return nil
}

// Load reads every collection back in saved order.
func (r *mongoSnapshotRepository) Load(ctx context.Context) (*repository.Snapshot, error) {
	var (
		snap repository.Snapshot
		err  error
	)
	if snap.Trainers, err = loadAll[domain.Trainer](ctx, r.trainers); err != nil {
		return nil, fmt.Errorf("load trainers: %w", err)
	}
	if snap.Clients, err = loadAll[domain.Client](ctx, r.clients); err != nil {
		return nil, fmt.Errorf("load clients: %w", err)
	}
	if snap.Routines, err = loadAll[domain.Routine](ctx, r.routines); err != nil {
		return nil, fmt.Errorf("load routines: %w", err)
	}
	if snap.Plans, err = loadAll[domain.Plan](ctx, r.plans); err != nil {
		return nil, fmt.Errorf("load plans: %w", err)
	}
	if snap.Progress, err = loadAll[domain.ProgressRecord](ctx, r.progress); err != nil {
		return nil, fmt.Errorf("load progress: %w", err)
	}
	return &snap, nil
}

func saveAll[T any](ctx context.Context, coll *mongo.Collection, docs []T, id func(T) string) error {
	if len(docs) == 0 {
		return nil
	}
	models := make([]mongo.WriteModel, 0, len(docs))
	for i, doc := range docs {
		models = append(models, mongo.NewReplaceOneModel().
			SetFilter(bson.M{"_id": id(doc)}).
			SetReplacement(ordered[T]{Seq: i, Doc: doc}).
			SetUpsert(true))
	}
	_, err := coll.BulkWrite(ctx, models, options.BulkWrite().SetOrdered(false))
	return err
}

func loadAll[T any](ctx context.Context, coll *mongo.Collection) ([]T, error) {
	cursor, err := coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "seq", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []ordered[T]
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}
	docs := make([]T, 0, len(rows))
	for _, row := range rows {
		docs = append(docs, row.Doc)
	}
	return docs, nil
}

// EnsureIndexes creates the unique username indexes and the ordering index.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	for _, name := range []string{trainerCollectionName, clientCollectionName} {
		_, err := db.Collection(name).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("username_unique"),
		})
		if err != nil {
			return fmt.Errorf("create username index on %s: %w", name, err)
		}
	}
	for _, name := range []string{trainerCollectionName, clientCollectionName, routineCollectionName, planCollectionName, progressCollectionName} {
		_, err := db.Collection(name).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: "seq", Value: 1}},
			Options: options.Index().SetName("seq"),
		})
		if err != nil {
			return fmt.Errorf("create seq index on %s: %w", name, err)
		}
	}
	return nil
}
