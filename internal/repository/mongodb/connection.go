// Package mongodb implements the repository against MongoDB.
package mongodb

import (
	"context"
	"fmt"
	"time"

	"smt-backend/config"
	"smt-backend/internal/entities"

	"github.com/jpillora/backoff"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

const (
	// DatabaseName is the database every collection lives in.
	DatabaseName = "smt-backend"
	// AppName is reported to the server in the handshake.
	AppName = "smt-backend"
	// PoolSize caps concurrent connections; checkouts block when exhausted.
	PoolSize = 16
)

// Mongo wraps a mongo client and its typed collections.
type Mongo struct {
	baseCtx context.Context
	log     *zap.SugaredLogger
	cfg     config.MongoConfig
	dbName  string

	client         *mongo.Client
	db             *mongo.Database
	users          collection[entities.User]
	teams          collection[entities.Team]
	meetingConfigs collection[entities.MeetingConfig]
	meetings       collection[entities.Meeting]
	userTimes      collection[entities.UserTime]
}

// New creates a Mongo repository instance.
func New(ctx context.Context, log *zap.SugaredLogger, cfg *config.Config) *Mongo {
	return &Mongo{
		baseCtx: ctx,
		log:     log.Named("repo.mongo"),
		cfg:     cfg.Mongo,
		dbName:  DatabaseName,
	}
}

// OnStart connects, waits for the server with bounded retry and ensures indexes.
func (p *Mongo) OnStart(_ context.Context) error {
	opts := options.Client().
		ApplyURI(p.cfg.URI).
		SetAppName(AppName).
		SetMaxPoolSize(PoolSize).
		SetConnectTimeout(p.cfg.ConnectTimeout).
		SetServerSelectionTimeout(p.cfg.ConnectTimeout)

	client, err := mongo.Connect(p.baseCtx, opts)
	if err != nil {
		return fmt.Errorf("connect mongo: %w", err)
	}

	if err := p.waitReady(client); err != nil {
		_ = client.Disconnect(context.Background())
		return err
	}

	p.client = client
	p.db = client.Database(p.dbName)
	p.users = newCollection[entities.User](p.db, entities.CollectionUsers)
	p.teams = newCollection[entities.Team](p.db, entities.CollectionTeams)
	p.meetingConfigs = newCollection[entities.MeetingConfig](p.db, entities.CollectionMeetingConfigs)
	p.meetings = newCollection[entities.Meeting](p.db, entities.CollectionMeetings)
	p.userTimes = newCollection[entities.UserTime](p.db, entities.CollectionUserTimes)

	if err := p.ensureIndexes(); err != nil {
		return err
	}

	p.log.Infow("mongo ready", "database", p.dbName, "pool_size", PoolSize)
	return nil
}

func (p *Mongo) waitReady(client *mongo.Client) error {
	b := &backoff.Backoff{
		Min:    200 * time.Millisecond,
		Max:    p.cfg.StartupMaxBackoff,
		Factor: 2,
		Jitter: true,
	}

	for attempt := 1; ; attempt++ {
		pingCtx, cancel := context.WithTimeout(p.baseCtx, p.cfg.ConnectTimeout)
		err := client.Ping(pingCtx, readpref.Primary())
		cancel()
		if err == nil {
			return nil
		}

		p.log.Warnw("mongo ping failed", "attempt", attempt, "error", err)
		if attempt >= p.cfg.StartupAttempts {
			return fmt.Errorf("ping mongo after %d attempts: %w", attempt, err)
		}

		select {
		case <-time.After(b.Duration()):
		case <-p.baseCtx.Done():
			return fmt.Errorf("ping mongo: %w", p.baseCtx.Err())
		}
	}
}

// ensureIndexes creates the unique email index so concurrent signups cannot
// both insert the same address.
func (p *Mongo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(p.baseCtx, p.cfg.ConnectTimeout)
	defer cancel()

	_, err := p.users.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("users_email_unique"),
	})
	if err != nil {
		return fmt.Errorf("create users email index: %w", err)
	}
	return nil
}

// OnStop disconnects the client and drains the pool.
func (p *Mongo) OnStop(ctx context.Context) error {
	if p.client != nil {
		return p.client.Disconnect(ctx)
	}
	return nil
}
