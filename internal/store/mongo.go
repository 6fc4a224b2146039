package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/dsa-tracker/backend/internal/domain/question"
)

const questionsCollection = "questions"

// MongoStore is the catalog's document store. All mutation is a single
// per-document update, so concurrent toggles race at the store and the last
// write wins; the service adds no locking on top.
type MongoStore struct {
	client    *mongo.Client
	questions *mongo.Collection
}

func NewMongo(ctx context.Context, uri, dbName string) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("ping: %w", err)
	}

	return &MongoStore{
		client:    client,
		questions: client.Database(dbName).Collection(questionsCollection),
	}, nil
}

func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// EnsureIndexes creates the unique index backing the business id. The seed
// importer calls this before writing.
func (s *MongoStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.questions.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

// List returns one page of matching questions plus the total match count
// independent of pagination.
func (s *MongoStore) List(ctx context.Context, q ListQuery) ([]question.Question, int64, error) {
	filter := q.Filter()

	total, err := s.questions.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("count questions: %w", err)
	}

	opts := options.Find().
		SetSort(q.SortDoc()).
		SetSkip(q.Skip()).
		SetLimit(int64(q.Limit))

	cur, err := s.questions.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("find questions: %w", err)
	}

	questions := []question.Question{}
	if err := cur.All(ctx, &questions); err != nil {
		return nil, 0, fmt.Errorf("decode questions: %w", err)
	}
	return questions, total, nil
}

func (s *MongoStore) GetByID(ctx context.Context, id string) (*question.Question, error) {
	var q question.Question
	err := s.questions.FindOne(ctx, bson.M{"id": id}).Decode(&q)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find question %s: %w", id, err)
	}
	return &q, nil
}

// ToggleCompleted flips the completed flag and returns the new value.
func (s *MongoStore) ToggleCompleted(ctx context.Context, id string) (bool, error) {
	return s.toggle(ctx, id, "completed")
}

// ToggleReview flips the review flag and returns the new value.
func (s *MongoStore) ToggleReview(ctx context.Context, id string) (bool, error) {
	return s.toggle(ctx, id, "review")
}

func (s *MongoStore) toggle(ctx context.Context, id, field string) (bool, error) {
	q, err := s.GetByID(ctx, id)
	if err != nil {
		return false, err
	}

	current := q.Completed
	if field == "review" {
		current = q.Review
	}
	next := !current

	_, err = s.questions.UpdateOne(ctx, bson.M{"id": id}, bson.M{
		"$set": bson.M{
			field:        next,
			"updated_at": time.Now().UTC(),
		},
	})
	if err != nil {
		return false, fmt.Errorf("update question %s: %w", id, err)
	}
	return next, nil
}

// Upsert writes a catalog record keyed by business id, stamping created_at on
// first insert and updated_at always. Used by the seed importer only.
func (s *MongoStore) Upsert(ctx context.Context, q question.Question) error {
	now := time.Now().UTC()
	update := bson.M{
		"$set": bson.M{
			"step_no":        q.StepNo,
			"sub_step_no":    q.SubStepNo,
			"sl_no":          q.SlNo,
			"step_title":     q.StepTitle,
			"sub_step_title": q.SubStepTitle,
			"question_title": q.QuestionTitle,
			"post_link":      q.PostLink,
			"yt_link":        q.YTLink,
			"plus_link":      q.PlusLink,
			"editorial_link": q.EditorialLink,
			"lc_link":        q.LCLink,
			"company_tags":   q.CompanyTags,
			"difficulty":     q.Difficulty,
			"ques_topic":     q.QuesTopic,
			"review":         q.Review,
			"completed":      q.Completed,
			"updated_at":     now,
		},
		"$setOnInsert": bson.M{
			"created_at": now,
		},
	}

	_, err := s.questions.UpdateOne(ctx, bson.M{"id": q.ID}, update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("upsert question %s: %w", q.ID, err)
	}
	return nil
}

// Stats aggregates the whole catalog in the store: plain counts for the
// overview, one $group by difficulty and one by step.
func (s *MongoStore) Stats(ctx context.Context) (*question.StatsSnapshot, error) {
	snap := &question.StatsSnapshot{}

	var err error
	if snap.Total, err = s.questions.CountDocuments(ctx, bson.M{}); err != nil {
		return nil, fmt.Errorf("count total: %w", err)
	}
	if snap.Completed, err = s.questions.CountDocuments(ctx, bson.M{"completed": true}); err != nil {
		return nil, fmt.Errorf("count completed: %w", err)
	}
	if snap.Review, err = s.questions.CountDocuments(ctx, bson.M{"review": true}); err != nil {
		return nil, fmt.Errorf("count review: %w", err)
	}

	if snap.Difficulties, err = s.difficultyTallies(ctx); err != nil {
		return nil, err
	}
	if snap.Steps, err = s.stepTallies(ctx); err != nil {
		return nil, err
	}
	return snap, nil
}

func (s *MongoStore) difficultyTallies(ctx context.Context) ([]question.DifficultyTally, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$difficulty"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
	}

	cur, err := s.questions.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate difficulties: %w", err)
	}

	var rows []struct {
		Difficulty question.Difficulty `bson:"_id"`
		Count      int64               `bson:"count"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("decode difficulty tallies: %w", err)
	}

	tallies := make([]question.DifficultyTally, len(rows))
	for i, r := range rows {
		tallies[i] = question.DifficultyTally{Difficulty: r.Difficulty, Count: r.Count}
	}
	return tallies, nil
}

func (s *MongoStore) stepTallies(ctx context.Context) ([]question.StepTally, error) {
	boolSum := func(field string) bson.D {
		return bson.D{{Key: "$sum", Value: bson.D{
			{Key: "$cond", Value: bson.A{"$" + field, 1, 0}},
		}}}
	}
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$step_no"},
			{Key: "step_title", Value: bson.D{{Key: "$first", Value: "$step_title"}}},
			{Key: "total", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "completed", Value: boolSum("completed")},
			{Key: "review", Value: boolSum("review")},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
	}

	cur, err := s.questions.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate steps: %w", err)
	}

	var rows []struct {
		StepNo    int    `bson:"_id"`
		StepTitle string `bson:"step_title"`
		Total     int64  `bson:"total"`
		Completed int64  `bson:"completed"`
		Review    int64  `bson:"review"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("decode step tallies: %w", err)
	}

	tallies := make([]question.StepTally, len(rows))
	for i, r := range rows {
		tallies[i] = question.StepTally{
			StepNo:    r.StepNo,
			StepTitle: r.StepTitle,
			Total:     r.Total,
			Completed: r.Completed,
			Review:    r.Review,
		}
	}
	return tallies, nil
}
