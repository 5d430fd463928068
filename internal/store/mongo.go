package store

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/valuin/domikado/pkg/province"
)

const provincesCollection = "provinces"

// document is the stored shape: the statistics plus a slug for lookups.
type document struct {
	Slug                string `bson:"slug"`
	province.Statistics `bson:",inline"`
}

// Mongo reads provinces from a MongoDB collection.
type Mongo struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// NewMongo connects to uri and ensures the lookup indexes exist.
func NewMongo(ctx context.Context, uri, database string) (*Mongo, error) {
	opts := options.Client().ApplyURI(uri).
		SetConnectTimeout(10 * time.Second).
		SetServerSelectionTimeout(10 * time.Second).
		SetRetryReads(true)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, eris.Wrap(err, "connecting to mongodb")
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, eris.Wrap(err, "pinging mongodb")
	}

	m := &Mongo{client: client, coll: client.Database(database).Collection(provincesCollection)}
	if err := m.ensureIndexes(ctx); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}
	log.Info().Str("database", database).Str("collection", provincesCollection).Msg("mongo store connected")
	return m, nil
}

func (m *Mongo) ensureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "province_id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("province_id_idx"),
		},
		{
			Keys:    bson.D{{Key: "slug", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("slug_idx"),
		},
	}
	if _, err := m.coll.Indexes().CreateMany(ctx, indexes); err != nil {
		return eris.Wrap(err, "creating province indexes")
	}
	return nil
}

// keyFilter matches a province by either UUID or by slug. Stored IDs are
// lowercased by newDocument, so the normalized key compares directly.
func keyFilter(key string) bson.M {
	k := normalizeKey(key)
	return bson.M{"$or": bson.A{
		bson.M{"province_id": k},
		bson.M{"provinces.id": k},
		bson.M{"slug": k},
	}}
}

// newDocument copies s into its stored shape with lowercase IDs.
func newDocument(s *province.Statistics) document {
	doc := document{Slug: s.Slug(), Statistics: *s}
	doc.ProvinceID = strings.ToLower(doc.ProvinceID)
	doc.Province.ID = strings.ToLower(doc.Province.ID)
	return doc
}

func (m *Mongo) List(ctx context.Context) ([]*province.Statistics, error) {
	cur, err := m.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "provinces.name", Value: 1}}))
	if err != nil {
		return nil, eris.Wrap(err, "listing provinces")
	}
	var docs []document
	if err := cur.All(ctx, &docs); err != nil {
		return nil, eris.Wrap(err, "reading provinces")
	}

	out := make([]*province.Statistics, 0, len(docs))
	for i := range docs {
		s := docs[i].Statistics
		province.Normalize(&s)
		out = append(out, &s)
	}
	return out, nil
}

func (m *Mongo) Get(ctx context.Context, key string) (*province.Statistics, error) {
	var doc document
	if err := m.coll.FindOne(ctx, keyFilter(key)).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, notFound(key)
		}
		return nil, eris.Wrapf(err, "loading province %q", key)
	}
	s := doc.Statistics
	province.Normalize(&s)
	return &s, nil
}

// Put upserts s by province ID.
func (m *Mongo) Put(ctx context.Context, s *province.Statistics) error {
	province.Normalize(s)
	doc := newDocument(s)
	_, err := m.coll.ReplaceOne(ctx, bson.M{"province_id": doc.ProvinceID}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return eris.Wrapf(err, "saving province %s", s.Name())
	}
	return nil
}

func (m *Mongo) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return m.client.Disconnect(ctx)
}
