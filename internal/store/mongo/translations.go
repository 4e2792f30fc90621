package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/linguabill/lingua-api/internal/store"
)

func (s *Store) CreateTranslationRequest(ctx context.Context, req *store.TranslationRequest) (*store.TranslationRequest, error) {
	if req.ID.IsZero() {
		req.ID = bson.NewObjectID()
	}

	if _, err := s.db.Collection(colTranslations).InsertOne(ctx, req); err != nil {
		return nil, fmt.Errorf("mongo: create translation request: %w", err)
	}
	return req, nil
}

func (s *Store) ListTranslationRequests(ctx context.Context, companyName string) ([]store.TranslationRequest, error) {
	filter := bson.M{}
	if companyName != "" {
		filter["company_name"] = companyName
	}

	cursor, err := s.db.Collection(colTranslations).Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("mongo: list translation requests: %w", err)
	}

	var reqs []store.TranslationRequest
	if err := cursor.All(ctx, &reqs); err != nil {
		return nil, fmt.Errorf("mongo: decode translation requests: %w", err)
	}
	return reqs, nil
}
