// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/methkalz/quizkit/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/methkalz/quizkit/ent/achievement"
	"github.com/methkalz/quizkit/ent/gamesession"
	"github.com/methkalz/quizkit/ent/playeranalytics"
	"github.com/methkalz/quizkit/ent/playerprogress"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Achievement is the client for interacting with the Achievement builders.
	Achievement *AchievementClient
	// GameSession is the client for interacting with the GameSession builders.
	GameSession *GameSessionClient
	// PlayerAnalytics is the client for interacting with the PlayerAnalytics builders.
	PlayerAnalytics *PlayerAnalyticsClient
	// PlayerProgress is the client for interacting with the PlayerProgress builders.
	PlayerProgress *PlayerProgressClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Achievement = NewAchievementClient(c.config)
	c.GameSession = NewGameSessionClient(c.config)
	c.PlayerAnalytics = NewPlayerAnalyticsClient(c.config)
	c.PlayerProgress = NewPlayerProgressClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:             ctx,
		config:          cfg,
		Achievement:     NewAchievementClient(cfg),
		GameSession:     NewGameSessionClient(cfg),
		PlayerAnalytics: NewPlayerAnalyticsClient(cfg),
		PlayerProgress:  NewPlayerProgressClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:             ctx,
		config:          cfg,
		Achievement:     NewAchievementClient(cfg),
		GameSession:     NewGameSessionClient(cfg),
		PlayerAnalytics: NewPlayerAnalyticsClient(cfg),
		PlayerProgress:  NewPlayerProgressClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Achievement.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	c.Achievement.Use(hooks...)
	c.GameSession.Use(hooks...)
	c.PlayerAnalytics.Use(hooks...)
	c.PlayerProgress.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.Achievement.Intercept(interceptors...)
	c.GameSession.Intercept(interceptors...)
	c.PlayerAnalytics.Intercept(interceptors...)
	c.PlayerProgress.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AchievementMutation:
		return c.Achievement.mutate(ctx, m)
	case *GameSessionMutation:
		return c.GameSession.mutate(ctx, m)
	case *PlayerAnalyticsMutation:
		return c.PlayerAnalytics.mutate(ctx, m)
	case *PlayerProgressMutation:
		return c.PlayerProgress.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AchievementClient is a client for the Achievement schema.
type AchievementClient struct {
	config
}

// NewAchievementClient returns a client for the Achievement from the given config.
func NewAchievementClient(c config) *AchievementClient {
	return &AchievementClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `achievement.Hooks(f(g(h())))`.
func (c *AchievementClient) Use(hooks ...Hook) {
	c.hooks.Achievement = append(c.hooks.Achievement, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `achievement.Intercept(f(g(h())))`.
func (c *AchievementClient) Intercept(interceptors ...Interceptor) {
	c.inters.Achievement = append(c.inters.Achievement, interceptors...)
}

// Create returns a builder for creating a Achievement entity.
func (c *AchievementClient) Create() *AchievementCreate {
	mutation := newAchievementMutation(c.config, OpCreate)
	return &AchievementCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Achievement entities.
func (c *AchievementClient) CreateBulk(builders ...*AchievementCreate) *AchievementCreateBulk {
	return &AchievementCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AchievementClient) MapCreateBulk(slice any, setFunc func(*AchievementCreate, int)) *AchievementCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AchievementCreateBulk{err: fmt.Errorf("calling to AchievementClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AchievementCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AchievementCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Achievement.
func (c *AchievementClient) Update() *AchievementUpdate {
	mutation := newAchievementMutation(c.config, OpUpdate)
	return &AchievementUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AchievementClient) UpdateOne(_m *Achievement) *AchievementUpdateOne {
	mutation := newAchievementMutation(c.config, OpUpdateOne, withAchievement(_m))
	return &AchievementUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AchievementClient) UpdateOneID(id int) *AchievementUpdateOne {
	mutation := newAchievementMutation(c.config, OpUpdateOne, withAchievementID(id))
	return &AchievementUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Achievement.
func (c *AchievementClient) Delete() *AchievementDelete {
	mutation := newAchievementMutation(c.config, OpDelete)
	return &AchievementDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AchievementClient) DeleteOne(_m *Achievement) *AchievementDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AchievementClient) DeleteOneID(id int) *AchievementDeleteOne {
	builder := c.Delete().Where(achievement.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AchievementDeleteOne{builder}
}

// Query returns a query builder for Achievement.
func (c *AchievementClient) Query() *AchievementQuery {
	return &AchievementQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAchievement},
		inters: c.Interceptors(),
	}
}

// Get returns a Achievement entity by its id.
func (c *AchievementClient) Get(ctx context.Context, id int) (*Achievement, error) {
	return c.Query().Where(achievement.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AchievementClient) GetX(ctx context.Context, id int) *Achievement {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AchievementClient) Hooks() []Hook {
	return c.hooks.Achievement
}

// Interceptors returns the client interceptors.
func (c *AchievementClient) Interceptors() []Interceptor {
	return c.inters.Achievement
}

func (c *AchievementClient) mutate(ctx context.Context, m *AchievementMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AchievementCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AchievementUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AchievementUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AchievementDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Achievement mutation op: %q", m.Op())
	}
}

// GameSessionClient is a client for the GameSession schema.
type GameSessionClient struct {
	config
}

// NewGameSessionClient returns a client for the GameSession from the given config.
func NewGameSessionClient(c config) *GameSessionClient {
	return &GameSessionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `gamesession.Hooks(f(g(h())))`.
func (c *GameSessionClient) Use(hooks ...Hook) {
	c.hooks.GameSession = append(c.hooks.GameSession, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `gamesession.Intercept(f(g(h())))`.
func (c *GameSessionClient) Intercept(interceptors ...Interceptor) {
	c.inters.GameSession = append(c.inters.GameSession, interceptors...)
}

// Create returns a builder for creating a GameSession entity.
func (c *GameSessionClient) Create() *GameSessionCreate {
	mutation := newGameSessionMutation(c.config, OpCreate)
	return &GameSessionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of GameSession entities.
func (c *GameSessionClient) CreateBulk(builders ...*GameSessionCreate) *GameSessionCreateBulk {
	return &GameSessionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *GameSessionClient) MapCreateBulk(slice any, setFunc func(*GameSessionCreate, int)) *GameSessionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &GameSessionCreateBulk{err: fmt.Errorf("calling to GameSessionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*GameSessionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &GameSessionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for GameSession.
func (c *GameSessionClient) Update() *GameSessionUpdate {
	mutation := newGameSessionMutation(c.config, OpUpdate)
	return &GameSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *GameSessionClient) UpdateOne(_m *GameSession) *GameSessionUpdateOne {
	mutation := newGameSessionMutation(c.config, OpUpdateOne, withGameSession(_m))
	return &GameSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *GameSessionClient) UpdateOneID(id int) *GameSessionUpdateOne {
	mutation := newGameSessionMutation(c.config, OpUpdateOne, withGameSessionID(id))
	return &GameSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for GameSession.
func (c *GameSessionClient) Delete() *GameSessionDelete {
	mutation := newGameSessionMutation(c.config, OpDelete)
	return &GameSessionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *GameSessionClient) DeleteOne(_m *GameSession) *GameSessionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *GameSessionClient) DeleteOneID(id int) *GameSessionDeleteOne {
	builder := c.Delete().Where(gamesession.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &GameSessionDeleteOne{builder}
}

// Query returns a query builder for GameSession.
func (c *GameSessionClient) Query() *GameSessionQuery {
	return &GameSessionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeGameSession},
		inters: c.Interceptors(),
	}
}

// Get returns a GameSession entity by its id.
func (c *GameSessionClient) Get(ctx context.Context, id int) (*GameSession, error) {
	return c.Query().Where(gamesession.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *GameSessionClient) GetX(ctx context.Context, id int) *GameSession {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *GameSessionClient) Hooks() []Hook {
	return c.hooks.GameSession
}

// Interceptors returns the client interceptors.
func (c *GameSessionClient) Interceptors() []Interceptor {
	return c.inters.GameSession
}

func (c *GameSessionClient) mutate(ctx context.Context, m *GameSessionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&GameSessionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&GameSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&GameSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&GameSessionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown GameSession mutation op: %q", m.Op())
	}
}

// PlayerAnalyticsClient is a client for the PlayerAnalytics schema.
type PlayerAnalyticsClient struct {
	config
}

// NewPlayerAnalyticsClient returns a client for the PlayerAnalytics from the given config.
func NewPlayerAnalyticsClient(c config) *PlayerAnalyticsClient {
	return &PlayerAnalyticsClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `playeranalytics.Hooks(f(g(h())))`.
func (c *PlayerAnalyticsClient) Use(hooks ...Hook) {
	c.hooks.PlayerAnalytics = append(c.hooks.PlayerAnalytics, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `playeranalytics.Intercept(f(g(h())))`.
func (c *PlayerAnalyticsClient) Intercept(interceptors ...Interceptor) {
	c.inters.PlayerAnalytics = append(c.inters.PlayerAnalytics, interceptors...)
}

// Create returns a builder for creating a PlayerAnalytics entity.
func (c *PlayerAnalyticsClient) Create() *PlayerAnalyticsCreate {
	mutation := newPlayerAnalyticsMutation(c.config, OpCreate)
	return &PlayerAnalyticsCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PlayerAnalytics entities.
func (c *PlayerAnalyticsClient) CreateBulk(builders ...*PlayerAnalyticsCreate) *PlayerAnalyticsCreateBulk {
	return &PlayerAnalyticsCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PlayerAnalyticsClient) MapCreateBulk(slice any, setFunc func(*PlayerAnalyticsCreate, int)) *PlayerAnalyticsCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PlayerAnalyticsCreateBulk{err: fmt.Errorf("calling to PlayerAnalyticsClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PlayerAnalyticsCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PlayerAnalyticsCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PlayerAnalytics.
func (c *PlayerAnalyticsClient) Update() *PlayerAnalyticsUpdate {
	mutation := newPlayerAnalyticsMutation(c.config, OpUpdate)
	return &PlayerAnalyticsUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PlayerAnalyticsClient) UpdateOne(_m *PlayerAnalytics) *PlayerAnalyticsUpdateOne {
	mutation := newPlayerAnalyticsMutation(c.config, OpUpdateOne, withPlayerAnalytics(_m))
	return &PlayerAnalyticsUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PlayerAnalyticsClient) UpdateOneID(id int) *PlayerAnalyticsUpdateOne {
	mutation := newPlayerAnalyticsMutation(c.config, OpUpdateOne, withPlayerAnalyticsID(id))
	return &PlayerAnalyticsUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PlayerAnalytics.
func (c *PlayerAnalyticsClient) Delete() *PlayerAnalyticsDelete {
	mutation := newPlayerAnalyticsMutation(c.config, OpDelete)
	return &PlayerAnalyticsDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PlayerAnalyticsClient) DeleteOne(_m *PlayerAnalytics) *PlayerAnalyticsDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PlayerAnalyticsClient) DeleteOneID(id int) *PlayerAnalyticsDeleteOne {
	builder := c.Delete().Where(playeranalytics.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PlayerAnalyticsDeleteOne{builder}
}

// Query returns a query builder for PlayerAnalytics.
func (c *PlayerAnalyticsClient) Query() *PlayerAnalyticsQuery {
	return &PlayerAnalyticsQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePlayerAnalytics},
		inters: c.Interceptors(),
	}
}

// Get returns a PlayerAnalytics entity by its id.
func (c *PlayerAnalyticsClient) Get(ctx context.Context, id int) (*PlayerAnalytics, error) {
	return c.Query().Where(playeranalytics.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PlayerAnalyticsClient) GetX(ctx context.Context, id int) *PlayerAnalytics {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PlayerAnalyticsClient) Hooks() []Hook {
	return c.hooks.PlayerAnalytics
}

// Interceptors returns the client interceptors.
func (c *PlayerAnalyticsClient) Interceptors() []Interceptor {
	return c.inters.PlayerAnalytics
}

func (c *PlayerAnalyticsClient) mutate(ctx context.Context, m *PlayerAnalyticsMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PlayerAnalyticsCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PlayerAnalyticsUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PlayerAnalyticsUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PlayerAnalyticsDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PlayerAnalytics mutation op: %q", m.Op())
	}
}

// PlayerProgressClient is a client for the PlayerProgress schema.
type PlayerProgressClient struct {
	config
}

// NewPlayerProgressClient returns a client for the PlayerProgress from the given config.
func NewPlayerProgressClient(c config) *PlayerProgressClient {
	return &PlayerProgressClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `playerprogress.Hooks(f(g(h())))`.
func (c *PlayerProgressClient) Use(hooks ...Hook) {
	c.hooks.PlayerProgress = append(c.hooks.PlayerProgress, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `playerprogress.Intercept(f(g(h())))`.
func (c *PlayerProgressClient) Intercept(interceptors ...Interceptor) {
	c.inters.PlayerProgress = append(c.inters.PlayerProgress, interceptors...)
}

// Create returns a builder for creating a PlayerProgress entity.
func (c *PlayerProgressClient) Create() *PlayerProgressCreate {
	mutation := newPlayerProgressMutation(c.config, OpCreate)
	return &PlayerProgressCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PlayerProgress entities.
func (c *PlayerProgressClient) CreateBulk(builders ...*PlayerProgressCreate) *PlayerProgressCreateBulk {
	return &PlayerProgressCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PlayerProgressClient) MapCreateBulk(slice any, setFunc func(*PlayerProgressCreate, int)) *PlayerProgressCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PlayerProgressCreateBulk{err: fmt.Errorf("calling to PlayerProgressClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PlayerProgressCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PlayerProgressCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PlayerProgress.
func (c *PlayerProgressClient) Update() *PlayerProgressUpdate {
	mutation := newPlayerProgressMutation(c.config, OpUpdate)
	return &PlayerProgressUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PlayerProgressClient) UpdateOne(_m *PlayerProgress) *PlayerProgressUpdateOne {
	mutation := newPlayerProgressMutation(c.config, OpUpdateOne, withPlayerProgress(_m))
	return &PlayerProgressUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PlayerProgressClient) UpdateOneID(id int) *PlayerProgressUpdateOne {
	mutation := newPlayerProgressMutation(c.config, OpUpdateOne, withPlayerProgressID(id))
	return &PlayerProgressUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PlayerProgress.
func (c *PlayerProgressClient) Delete() *PlayerProgressDelete {
	mutation := newPlayerProgressMutation(c.config, OpDelete)
	return &PlayerProgressDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PlayerProgressClient) DeleteOne(_m *PlayerProgress) *PlayerProgressDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PlayerProgressClient) DeleteOneID(id int) *PlayerProgressDeleteOne {
	builder := c.Delete().Where(playerprogress.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PlayerProgressDeleteOne{builder}
}

// Query returns a query builder for PlayerProgress.
func (c *PlayerProgressClient) Query() *PlayerProgressQuery {
	return &PlayerProgressQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePlayerProgress},
		inters: c.Interceptors(),
	}
}

// Get returns a PlayerProgress entity by its id.
func (c *PlayerProgressClient) Get(ctx context.Context, id int) (*PlayerProgress, error) {
	return c.Query().Where(playerprogress.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PlayerProgressClient) GetX(ctx context.Context, id int) *PlayerProgress {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PlayerProgressClient) Hooks() []Hook {
	return c.hooks.PlayerProgress
}

// Interceptors returns the client interceptors.
func (c *PlayerProgressClient) Interceptors() []Interceptor {
	return c.inters.PlayerProgress
}

func (c *PlayerProgressClient) mutate(ctx context.Context, m *PlayerProgressMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PlayerProgressCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PlayerProgressUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PlayerProgressUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PlayerProgressDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PlayerProgress mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Achievement, GameSession, PlayerAnalytics, PlayerProgress []ent.Hook
	}
	inters struct {
		Achievement, GameSession, PlayerAnalytics, PlayerProgress []ent.Interceptor
	}
)
