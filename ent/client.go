// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/jeevibe/engine/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/jeevibe/engine/ent/question"
	"github.com/jeevibe/engine/ent/quotacounter"
	"github.com/jeevibe/engine/ent/response"
	"github.com/jeevibe/engine/ent/reviewinterval"
	"github.com/jeevibe/engine/ent/session"
	"github.com/jeevibe/engine/ent/sessionquestion"
	"github.com/jeevibe/engine/ent/thetasnapshot"
	"github.com/jeevibe/engine/ent/tierconfig"
	"github.com/jeevibe/engine/ent/user"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Question is the client for interacting with the Question builders.
	Question *QuestionClient
	// QuotaCounter is the client for interacting with the QuotaCounter builders.
	QuotaCounter *QuotaCounterClient
	// Response is the client for interacting with the Response builders.
	Response *ResponseClient
	// ReviewInterval is the client for interacting with the ReviewInterval builders.
	ReviewInterval *ReviewIntervalClient
	// Session is the client for interacting with the Session builders.
	Session *SessionClient
	// SessionQuestion is the client for interacting with the SessionQuestion builders.
	SessionQuestion *SessionQuestionClient
	// ThetaSnapshot is the client for interacting with the ThetaSnapshot builders.
	ThetaSnapshot *ThetaSnapshotClient
	// TierConfig is the client for interacting with the TierConfig builders.
	TierConfig *TierConfigClient
	// User is the client for interacting with the User builders.
	User *UserClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Question = NewQuestionClient(c.config)
	c.QuotaCounter = NewQuotaCounterClient(c.config)
	c.Response = NewResponseClient(c.config)
	c.ReviewInterval = NewReviewIntervalClient(c.config)
	c.Session = NewSessionClient(c.config)
	c.SessionQuestion = NewSessionQuestionClient(c.config)
	c.ThetaSnapshot = NewThetaSnapshotClient(c.config)
	c.TierConfig = NewTierConfigClient(c.config)
	c.User = NewUserClient(c.config)
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
		Question:        NewQuestionClient(cfg),
		QuotaCounter:    NewQuotaCounterClient(cfg),
		Response:        NewResponseClient(cfg),
		ReviewInterval:  NewReviewIntervalClient(cfg),
		Session:         NewSessionClient(cfg),
		SessionQuestion: NewSessionQuestionClient(cfg),
		ThetaSnapshot:   NewThetaSnapshotClient(cfg),
		TierConfig:      NewTierConfigClient(cfg),
		User:            NewUserClient(cfg),
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
		Question:        NewQuestionClient(cfg),
		QuotaCounter:    NewQuotaCounterClient(cfg),
		Response:        NewResponseClient(cfg),
		ReviewInterval:  NewReviewIntervalClient(cfg),
		Session:         NewSessionClient(cfg),
		SessionQuestion: NewSessionQuestionClient(cfg),
		ThetaSnapshot:   NewThetaSnapshotClient(cfg),
		TierConfig:      NewTierConfigClient(cfg),
		User:            NewUserClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Question.
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
	for _, n := range []interface{ Use(...Hook) }{
		c.Question, c.QuotaCounter, c.Response, c.ReviewInterval, c.Session,
		c.SessionQuestion, c.ThetaSnapshot, c.TierConfig, c.User,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Question, c.QuotaCounter, c.Response, c.ReviewInterval, c.Session,
		c.SessionQuestion, c.ThetaSnapshot, c.TierConfig, c.User,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *QuestionMutation:
		return c.Question.mutate(ctx, m)
	case *QuotaCounterMutation:
		return c.QuotaCounter.mutate(ctx, m)
	case *ResponseMutation:
		return c.Response.mutate(ctx, m)
	case *ReviewIntervalMutation:
		return c.ReviewInterval.mutate(ctx, m)
	case *SessionMutation:
		return c.Session.mutate(ctx, m)
	case *SessionQuestionMutation:
		return c.SessionQuestion.mutate(ctx, m)
	case *ThetaSnapshotMutation:
		return c.ThetaSnapshot.mutate(ctx, m)
	case *TierConfigMutation:
		return c.TierConfig.mutate(ctx, m)
	case *UserMutation:
		return c.User.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// QuestionClient is a client for the Question schema.
type QuestionClient struct {
	config
}

// NewQuestionClient returns a client for the Question from the given config.
func NewQuestionClient(c config) *QuestionClient {
	return &QuestionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `question.Hooks(f(g(h())))`.
func (c *QuestionClient) Use(hooks ...Hook) {
	c.hooks.Question = append(c.hooks.Question, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `question.Intercept(f(g(h())))`.
func (c *QuestionClient) Intercept(interceptors ...Interceptor) {
	c.inters.Question = append(c.inters.Question, interceptors...)
}

// Create returns a builder for creating a Question entity.
func (c *QuestionClient) Create() *QuestionCreate {
	mutation := newQuestionMutation(c.config, OpCreate)
	return &QuestionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Question entities.
func (c *QuestionClient) CreateBulk(builders ...*QuestionCreate) *QuestionCreateBulk {
	return &QuestionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *QuestionClient) MapCreateBulk(slice any, setFunc func(*QuestionCreate, int)) *QuestionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &QuestionCreateBulk{err: fmt.Errorf("calling to QuestionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*QuestionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &QuestionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Question.
func (c *QuestionClient) Update() *QuestionUpdate {
	mutation := newQuestionMutation(c.config, OpUpdate)
	return &QuestionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *QuestionClient) UpdateOne(_m *Question) *QuestionUpdateOne {
	mutation := newQuestionMutation(c.config, OpUpdateOne, withQuestion(_m))
	return &QuestionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *QuestionClient) UpdateOneID(id string) *QuestionUpdateOne {
	mutation := newQuestionMutation(c.config, OpUpdateOne, withQuestionID(id))
	return &QuestionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Question.
func (c *QuestionClient) Delete() *QuestionDelete {
	mutation := newQuestionMutation(c.config, OpDelete)
	return &QuestionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *QuestionClient) DeleteOne(_m *Question) *QuestionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *QuestionClient) DeleteOneID(id string) *QuestionDeleteOne {
	builder := c.Delete().Where(question.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &QuestionDeleteOne{builder}
}

// Query returns a query builder for Question.
func (c *QuestionClient) Query() *QuestionQuery {
	return &QuestionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeQuestion},
		inters: c.Interceptors(),
	}
}

// Get returns a Question entity by its id.
func (c *QuestionClient) Get(ctx context.Context, id string) (*Question, error) {
	return c.Query().Where(question.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *QuestionClient) GetX(ctx context.Context, id string) *Question {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *QuestionClient) Hooks() []Hook {
	return c.hooks.Question
}

// Interceptors returns the client interceptors.
func (c *QuestionClient) Interceptors() []Interceptor {
	return c.inters.Question
}

func (c *QuestionClient) mutate(ctx context.Context, m *QuestionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&QuestionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&QuestionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&QuestionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&QuestionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Question mutation op: %q", m.Op())
	}
}

// QuotaCounterClient is a client for the QuotaCounter schema.
type QuotaCounterClient struct {
	config
}

// NewQuotaCounterClient returns a client for the QuotaCounter from the given config.
func NewQuotaCounterClient(c config) *QuotaCounterClient {
	return &QuotaCounterClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `quotacounter.Hooks(f(g(h())))`.
func (c *QuotaCounterClient) Use(hooks ...Hook) {
	c.hooks.QuotaCounter = append(c.hooks.QuotaCounter, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `quotacounter.Intercept(f(g(h())))`.
func (c *QuotaCounterClient) Intercept(interceptors ...Interceptor) {
	c.inters.QuotaCounter = append(c.inters.QuotaCounter, interceptors...)
}

// Create returns a builder for creating a QuotaCounter entity.
func (c *QuotaCounterClient) Create() *QuotaCounterCreate {
	mutation := newQuotaCounterMutation(c.config, OpCreate)
	return &QuotaCounterCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of QuotaCounter entities.
func (c *QuotaCounterClient) CreateBulk(builders ...*QuotaCounterCreate) *QuotaCounterCreateBulk {
	return &QuotaCounterCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *QuotaCounterClient) MapCreateBulk(slice any, setFunc func(*QuotaCounterCreate, int)) *QuotaCounterCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &QuotaCounterCreateBulk{err: fmt.Errorf("calling to QuotaCounterClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*QuotaCounterCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &QuotaCounterCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for QuotaCounter.
func (c *QuotaCounterClient) Update() *QuotaCounterUpdate {
	mutation := newQuotaCounterMutation(c.config, OpUpdate)
	return &QuotaCounterUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *QuotaCounterClient) UpdateOne(_m *QuotaCounter) *QuotaCounterUpdateOne {
	mutation := newQuotaCounterMutation(c.config, OpUpdateOne, withQuotaCounter(_m))
	return &QuotaCounterUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *QuotaCounterClient) UpdateOneID(id int) *QuotaCounterUpdateOne {
	mutation := newQuotaCounterMutation(c.config, OpUpdateOne, withQuotaCounterID(id))
	return &QuotaCounterUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for QuotaCounter.
func (c *QuotaCounterClient) Delete() *QuotaCounterDelete {
	mutation := newQuotaCounterMutation(c.config, OpDelete)
	return &QuotaCounterDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *QuotaCounterClient) DeleteOne(_m *QuotaCounter) *QuotaCounterDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *QuotaCounterClient) DeleteOneID(id int) *QuotaCounterDeleteOne {
	builder := c.Delete().Where(quotacounter.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &QuotaCounterDeleteOne{builder}
}

// Query returns a query builder for QuotaCounter.
func (c *QuotaCounterClient) Query() *QuotaCounterQuery {
	return &QuotaCounterQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeQuotaCounter},
		inters: c.Interceptors(),
	}
}

// Get returns a QuotaCounter entity by its id.
func (c *QuotaCounterClient) Get(ctx context.Context, id int) (*QuotaCounter, error) {
	return c.Query().Where(quotacounter.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *QuotaCounterClient) GetX(ctx context.Context, id int) *QuotaCounter {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *QuotaCounterClient) Hooks() []Hook {
	return c.hooks.QuotaCounter
}

// Interceptors returns the client interceptors.
func (c *QuotaCounterClient) Interceptors() []Interceptor {
	return c.inters.QuotaCounter
}

func (c *QuotaCounterClient) mutate(ctx context.Context, m *QuotaCounterMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&QuotaCounterCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&QuotaCounterUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&QuotaCounterUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&QuotaCounterDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown QuotaCounter mutation op: %q", m.Op())
	}
}

// ResponseClient is a client for the Response schema.
type ResponseClient struct {
	config
}

// NewResponseClient returns a client for the Response from the given config.
func NewResponseClient(c config) *ResponseClient {
	return &ResponseClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `response.Hooks(f(g(h())))`.
func (c *ResponseClient) Use(hooks ...Hook) {
	c.hooks.Response = append(c.hooks.Response, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `response.Intercept(f(g(h())))`.
func (c *ResponseClient) Intercept(interceptors ...Interceptor) {
	c.inters.Response = append(c.inters.Response, interceptors...)
}

// Create returns a builder for creating a Response entity.
func (c *ResponseClient) Create() *ResponseCreate {
	mutation := newResponseMutation(c.config, OpCreate)
	return &ResponseCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Response entities.
func (c *ResponseClient) CreateBulk(builders ...*ResponseCreate) *ResponseCreateBulk {
	return &ResponseCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ResponseClient) MapCreateBulk(slice any, setFunc func(*ResponseCreate, int)) *ResponseCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ResponseCreateBulk{err: fmt.Errorf("calling to ResponseClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ResponseCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ResponseCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Response.
func (c *ResponseClient) Update() *ResponseUpdate {
	mutation := newResponseMutation(c.config, OpUpdate)
	return &ResponseUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ResponseClient) UpdateOne(_m *Response) *ResponseUpdateOne {
	mutation := newResponseMutation(c.config, OpUpdateOne, withResponse(_m))
	return &ResponseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ResponseClient) UpdateOneID(id int) *ResponseUpdateOne {
	mutation := newResponseMutation(c.config, OpUpdateOne, withResponseID(id))
	return &ResponseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Response.
func (c *ResponseClient) Delete() *ResponseDelete {
	mutation := newResponseMutation(c.config, OpDelete)
	return &ResponseDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ResponseClient) DeleteOne(_m *Response) *ResponseDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ResponseClient) DeleteOneID(id int) *ResponseDeleteOne {
	builder := c.Delete().Where(response.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ResponseDeleteOne{builder}
}

// Query returns a query builder for Response.
func (c *ResponseClient) Query() *ResponseQuery {
	return &ResponseQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeResponse},
		inters: c.Interceptors(),
	}
}

// Get returns a Response entity by its id.
func (c *ResponseClient) Get(ctx context.Context, id int) (*Response, error) {
	return c.Query().Where(response.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ResponseClient) GetX(ctx context.Context, id int) *Response {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ResponseClient) Hooks() []Hook {
	return c.hooks.Response
}

// Interceptors returns the client interceptors.
func (c *ResponseClient) Interceptors() []Interceptor {
	return c.inters.Response
}

func (c *ResponseClient) mutate(ctx context.Context, m *ResponseMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ResponseCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ResponseUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ResponseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ResponseDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Response mutation op: %q", m.Op())
	}
}

// ReviewIntervalClient is a client for the ReviewInterval schema.
type ReviewIntervalClient struct {
	config
}

// NewReviewIntervalClient returns a client for the ReviewInterval from the given config.
func NewReviewIntervalClient(c config) *ReviewIntervalClient {
	return &ReviewIntervalClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `reviewinterval.Hooks(f(g(h())))`.
func (c *ReviewIntervalClient) Use(hooks ...Hook) {
	c.hooks.ReviewInterval = append(c.hooks.ReviewInterval, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `reviewinterval.Intercept(f(g(h())))`.
func (c *ReviewIntervalClient) Intercept(interceptors ...Interceptor) {
	c.inters.ReviewInterval = append(c.inters.ReviewInterval, interceptors...)
}

// Create returns a builder for creating a ReviewInterval entity.
func (c *ReviewIntervalClient) Create() *ReviewIntervalCreate {
	mutation := newReviewIntervalMutation(c.config, OpCreate)
	return &ReviewIntervalCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ReviewInterval entities.
func (c *ReviewIntervalClient) CreateBulk(builders ...*ReviewIntervalCreate) *ReviewIntervalCreateBulk {
	return &ReviewIntervalCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ReviewIntervalClient) MapCreateBulk(slice any, setFunc func(*ReviewIntervalCreate, int)) *ReviewIntervalCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ReviewIntervalCreateBulk{err: fmt.Errorf("calling to ReviewIntervalClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ReviewIntervalCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ReviewIntervalCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ReviewInterval.
func (c *ReviewIntervalClient) Update() *ReviewIntervalUpdate {
	mutation := newReviewIntervalMutation(c.config, OpUpdate)
	return &ReviewIntervalUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ReviewIntervalClient) UpdateOne(_m *ReviewInterval) *ReviewIntervalUpdateOne {
	mutation := newReviewIntervalMutation(c.config, OpUpdateOne, withReviewInterval(_m))
	return &ReviewIntervalUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ReviewIntervalClient) UpdateOneID(id int) *ReviewIntervalUpdateOne {
	mutation := newReviewIntervalMutation(c.config, OpUpdateOne, withReviewIntervalID(id))
	return &ReviewIntervalUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ReviewInterval.
func (c *ReviewIntervalClient) Delete() *ReviewIntervalDelete {
	mutation := newReviewIntervalMutation(c.config, OpDelete)
	return &ReviewIntervalDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ReviewIntervalClient) DeleteOne(_m *ReviewInterval) *ReviewIntervalDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ReviewIntervalClient) DeleteOneID(id int) *ReviewIntervalDeleteOne {
	builder := c.Delete().Where(reviewinterval.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ReviewIntervalDeleteOne{builder}
}

// Query returns a query builder for ReviewInterval.
func (c *ReviewIntervalClient) Query() *ReviewIntervalQuery {
	return &ReviewIntervalQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeReviewInterval},
		inters: c.Interceptors(),
	}
}

// Get returns a ReviewInterval entity by its id.
func (c *ReviewIntervalClient) Get(ctx context.Context, id int) (*ReviewInterval, error) {
	return c.Query().Where(reviewinterval.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ReviewIntervalClient) GetX(ctx context.Context, id int) *ReviewInterval {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ReviewIntervalClient) Hooks() []Hook {
	return c.hooks.ReviewInterval
}

// Interceptors returns the client interceptors.
func (c *ReviewIntervalClient) Interceptors() []Interceptor {
	return c.inters.ReviewInterval
}

func (c *ReviewIntervalClient) mutate(ctx context.Context, m *ReviewIntervalMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ReviewIntervalCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ReviewIntervalUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ReviewIntervalUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ReviewIntervalDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ReviewInterval mutation op: %q", m.Op())
	}
}

// SessionClient is a client for the Session schema.
type SessionClient struct {
	config
}

// NewSessionClient returns a client for the Session from the given config.
func NewSessionClient(c config) *SessionClient {
	return &SessionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `session.Hooks(f(g(h())))`.
func (c *SessionClient) Use(hooks ...Hook) {
	c.hooks.Session = append(c.hooks.Session, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `session.Intercept(f(g(h())))`.
func (c *SessionClient) Intercept(interceptors ...Interceptor) {
	c.inters.Session = append(c.inters.Session, interceptors...)
}

// Create returns a builder for creating a Session entity.
func (c *SessionClient) Create() *SessionCreate {
	mutation := newSessionMutation(c.config, OpCreate)
	return &SessionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Session entities.
func (c *SessionClient) CreateBulk(builders ...*SessionCreate) *SessionCreateBulk {
	return &SessionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SessionClient) MapCreateBulk(slice any, setFunc func(*SessionCreate, int)) *SessionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SessionCreateBulk{err: fmt.Errorf("calling to SessionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SessionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SessionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Session.
func (c *SessionClient) Update() *SessionUpdate {
	mutation := newSessionMutation(c.config, OpUpdate)
	return &SessionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SessionClient) UpdateOne(_m *Session) *SessionUpdateOne {
	mutation := newSessionMutation(c.config, OpUpdateOne, withSession(_m))
	return &SessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SessionClient) UpdateOneID(id string) *SessionUpdateOne {
	mutation := newSessionMutation(c.config, OpUpdateOne, withSessionID(id))
	return &SessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Session.
func (c *SessionClient) Delete() *SessionDelete {
	mutation := newSessionMutation(c.config, OpDelete)
	return &SessionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SessionClient) DeleteOne(_m *Session) *SessionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SessionClient) DeleteOneID(id string) *SessionDeleteOne {
	builder := c.Delete().Where(session.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SessionDeleteOne{builder}
}

// Query returns a query builder for Session.
func (c *SessionClient) Query() *SessionQuery {
	return &SessionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSession},
		inters: c.Interceptors(),
	}
}

// Get returns a Session entity by its id.
func (c *SessionClient) Get(ctx context.Context, id string) (*Session, error) {
	return c.Query().Where(session.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SessionClient) GetX(ctx context.Context, id string) *Session {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SessionClient) Hooks() []Hook {
	return c.hooks.Session
}

// Interceptors returns the client interceptors.
func (c *SessionClient) Interceptors() []Interceptor {
	return c.inters.Session
}

func (c *SessionClient) mutate(ctx context.Context, m *SessionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SessionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SessionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SessionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Session mutation op: %q", m.Op())
	}
}

// SessionQuestionClient is a client for the SessionQuestion schema.
type SessionQuestionClient struct {
	config
}

// NewSessionQuestionClient returns a client for the SessionQuestion from the given config.
func NewSessionQuestionClient(c config) *SessionQuestionClient {
	return &SessionQuestionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `sessionquestion.Hooks(f(g(h())))`.
func (c *SessionQuestionClient) Use(hooks ...Hook) {
	c.hooks.SessionQuestion = append(c.hooks.SessionQuestion, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `sessionquestion.Intercept(f(g(h())))`.
func (c *SessionQuestionClient) Intercept(interceptors ...Interceptor) {
	c.inters.SessionQuestion = append(c.inters.SessionQuestion, interceptors...)
}

// Create returns a builder for creating a SessionQuestion entity.
func (c *SessionQuestionClient) Create() *SessionQuestionCreate {
	mutation := newSessionQuestionMutation(c.config, OpCreate)
	return &SessionQuestionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SessionQuestion entities.
func (c *SessionQuestionClient) CreateBulk(builders ...*SessionQuestionCreate) *SessionQuestionCreateBulk {
	return &SessionQuestionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SessionQuestionClient) MapCreateBulk(slice any, setFunc func(*SessionQuestionCreate, int)) *SessionQuestionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SessionQuestionCreateBulk{err: fmt.Errorf("calling to SessionQuestionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SessionQuestionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SessionQuestionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SessionQuestion.
func (c *SessionQuestionClient) Update() *SessionQuestionUpdate {
	mutation := newSessionQuestionMutation(c.config, OpUpdate)
	return &SessionQuestionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SessionQuestionClient) UpdateOne(_m *SessionQuestion) *SessionQuestionUpdateOne {
	mutation := newSessionQuestionMutation(c.config, OpUpdateOne, withSessionQuestion(_m))
	return &SessionQuestionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SessionQuestionClient) UpdateOneID(id int) *SessionQuestionUpdateOne {
	mutation := newSessionQuestionMutation(c.config, OpUpdateOne, withSessionQuestionID(id))
	return &SessionQuestionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SessionQuestion.
func (c *SessionQuestionClient) Delete() *SessionQuestionDelete {
	mutation := newSessionQuestionMutation(c.config, OpDelete)
	return &SessionQuestionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SessionQuestionClient) DeleteOne(_m *SessionQuestion) *SessionQuestionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SessionQuestionClient) DeleteOneID(id int) *SessionQuestionDeleteOne {
	builder := c.Delete().Where(sessionquestion.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SessionQuestionDeleteOne{builder}
}

// Query returns a query builder for SessionQuestion.
func (c *SessionQuestionClient) Query() *SessionQuestionQuery {
	return &SessionQuestionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSessionQuestion},
		inters: c.Interceptors(),
	}
}

// Get returns a SessionQuestion entity by its id.
func (c *SessionQuestionClient) Get(ctx context.Context, id int) (*SessionQuestion, error) {
	return c.Query().Where(sessionquestion.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SessionQuestionClient) GetX(ctx context.Context, id int) *SessionQuestion {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SessionQuestionClient) Hooks() []Hook {
	return c.hooks.SessionQuestion
}

// Interceptors returns the client interceptors.
func (c *SessionQuestionClient) Interceptors() []Interceptor {
	return c.inters.SessionQuestion
}

func (c *SessionQuestionClient) mutate(ctx context.Context, m *SessionQuestionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SessionQuestionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SessionQuestionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SessionQuestionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SessionQuestionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SessionQuestion mutation op: %q", m.Op())
	}
}

// ThetaSnapshotClient is a client for the ThetaSnapshot schema.
type ThetaSnapshotClient struct {
	config
}

// NewThetaSnapshotClient returns a client for the ThetaSnapshot from the given config.
func NewThetaSnapshotClient(c config) *ThetaSnapshotClient {
	return &ThetaSnapshotClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `thetasnapshot.Hooks(f(g(h())))`.
func (c *ThetaSnapshotClient) Use(hooks ...Hook) {
	c.hooks.ThetaSnapshot = append(c.hooks.ThetaSnapshot, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `thetasnapshot.Intercept(f(g(h())))`.
func (c *ThetaSnapshotClient) Intercept(interceptors ...Interceptor) {
	c.inters.ThetaSnapshot = append(c.inters.ThetaSnapshot, interceptors...)
}

// Create returns a builder for creating a ThetaSnapshot entity.
func (c *ThetaSnapshotClient) Create() *ThetaSnapshotCreate {
	mutation := newThetaSnapshotMutation(c.config, OpCreate)
	return &ThetaSnapshotCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ThetaSnapshot entities.
func (c *ThetaSnapshotClient) CreateBulk(builders ...*ThetaSnapshotCreate) *ThetaSnapshotCreateBulk {
	return &ThetaSnapshotCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ThetaSnapshotClient) MapCreateBulk(slice any, setFunc func(*ThetaSnapshotCreate, int)) *ThetaSnapshotCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ThetaSnapshotCreateBulk{err: fmt.Errorf("calling to ThetaSnapshotClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ThetaSnapshotCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ThetaSnapshotCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ThetaSnapshot.
func (c *ThetaSnapshotClient) Update() *ThetaSnapshotUpdate {
	mutation := newThetaSnapshotMutation(c.config, OpUpdate)
	return &ThetaSnapshotUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ThetaSnapshotClient) UpdateOne(_m *ThetaSnapshot) *ThetaSnapshotUpdateOne {
	mutation := newThetaSnapshotMutation(c.config, OpUpdateOne, withThetaSnapshot(_m))
	return &ThetaSnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ThetaSnapshotClient) UpdateOneID(id int) *ThetaSnapshotUpdateOne {
	mutation := newThetaSnapshotMutation(c.config, OpUpdateOne, withThetaSnapshotID(id))
	return &ThetaSnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ThetaSnapshot.
func (c *ThetaSnapshotClient) Delete() *ThetaSnapshotDelete {
	mutation := newThetaSnapshotMutation(c.config, OpDelete)
	return &ThetaSnapshotDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ThetaSnapshotClient) DeleteOne(_m *ThetaSnapshot) *ThetaSnapshotDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ThetaSnapshotClient) DeleteOneID(id int) *ThetaSnapshotDeleteOne {
	builder := c.Delete().Where(thetasnapshot.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ThetaSnapshotDeleteOne{builder}
}

// Query returns a query builder for ThetaSnapshot.
func (c *ThetaSnapshotClient) Query() *ThetaSnapshotQuery {
	return &ThetaSnapshotQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeThetaSnapshot},
		inters: c.Interceptors(),
	}
}

// Get returns a ThetaSnapshot entity by its id.
func (c *ThetaSnapshotClient) Get(ctx context.Context, id int) (*ThetaSnapshot, error) {
	return c.Query().Where(thetasnapshot.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ThetaSnapshotClient) GetX(ctx context.Context, id int) *ThetaSnapshot {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ThetaSnapshotClient) Hooks() []Hook {
	return c.hooks.ThetaSnapshot
}

// Interceptors returns the client interceptors.
func (c *ThetaSnapshotClient) Interceptors() []Interceptor {
	return c.inters.ThetaSnapshot
}

func (c *ThetaSnapshotClient) mutate(ctx context.Context, m *ThetaSnapshotMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ThetaSnapshotCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ThetaSnapshotUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ThetaSnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ThetaSnapshotDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ThetaSnapshot mutation op: %q", m.Op())
	}
}

// TierConfigClient is a client for the TierConfig schema.
type TierConfigClient struct {
	config
}

// NewTierConfigClient returns a client for the TierConfig from the given config.
func NewTierConfigClient(c config) *TierConfigClient {
	return &TierConfigClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `tierconfig.Hooks(f(g(h())))`.
func (c *TierConfigClient) Use(hooks ...Hook) {
	c.hooks.TierConfig = append(c.hooks.TierConfig, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `tierconfig.Intercept(f(g(h())))`.
func (c *TierConfigClient) Intercept(interceptors ...Interceptor) {
	c.inters.TierConfig = append(c.inters.TierConfig, interceptors...)
}

// Create returns a builder for creating a TierConfig entity.
func (c *TierConfigClient) Create() *TierConfigCreate {
	mutation := newTierConfigMutation(c.config, OpCreate)
	return &TierConfigCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TierConfig entities.
func (c *TierConfigClient) CreateBulk(builders ...*TierConfigCreate) *TierConfigCreateBulk {
	return &TierConfigCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TierConfigClient) MapCreateBulk(slice any, setFunc func(*TierConfigCreate, int)) *TierConfigCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TierConfigCreateBulk{err: fmt.Errorf("calling to TierConfigClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TierConfigCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TierConfigCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TierConfig.
func (c *TierConfigClient) Update() *TierConfigUpdate {
	mutation := newTierConfigMutation(c.config, OpUpdate)
	return &TierConfigUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TierConfigClient) UpdateOne(_m *TierConfig) *TierConfigUpdateOne {
	mutation := newTierConfigMutation(c.config, OpUpdateOne, withTierConfig(_m))
	return &TierConfigUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TierConfigClient) UpdateOneID(id string) *TierConfigUpdateOne {
	mutation := newTierConfigMutation(c.config, OpUpdateOne, withTierConfigID(id))
	return &TierConfigUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TierConfig.
func (c *TierConfigClient) Delete() *TierConfigDelete {
	mutation := newTierConfigMutation(c.config, OpDelete)
	return &TierConfigDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TierConfigClient) DeleteOne(_m *TierConfig) *TierConfigDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TierConfigClient) DeleteOneID(id string) *TierConfigDeleteOne {
	builder := c.Delete().Where(tierconfig.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TierConfigDeleteOne{builder}
}

// Query returns a query builder for TierConfig.
func (c *TierConfigClient) Query() *TierConfigQuery {
	return &TierConfigQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTierConfig},
		inters: c.Interceptors(),
	}
}

// Get returns a TierConfig entity by its id.
func (c *TierConfigClient) Get(ctx context.Context, id string) (*TierConfig, error) {
	return c.Query().Where(tierconfig.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TierConfigClient) GetX(ctx context.Context, id string) *TierConfig {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TierConfigClient) Hooks() []Hook {
	return c.hooks.TierConfig
}

// Interceptors returns the client interceptors.
func (c *TierConfigClient) Interceptors() []Interceptor {
	return c.inters.TierConfig
}

func (c *TierConfigClient) mutate(ctx context.Context, m *TierConfigMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TierConfigCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TierConfigUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TierConfigUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TierConfigDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TierConfig mutation op: %q", m.Op())
	}
}

// UserClient is a client for the User schema.
type UserClient struct {
	config
}

// NewUserClient returns a client for the User from the given config.
func NewUserClient(c config) *UserClient {
	return &UserClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `user.Hooks(f(g(h())))`.
func (c *UserClient) Use(hooks ...Hook) {
	c.hooks.User = append(c.hooks.User, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `user.Intercept(f(g(h())))`.
func (c *UserClient) Intercept(interceptors ...Interceptor) {
	c.inters.User = append(c.inters.User, interceptors...)
}

// Create returns a builder for creating a User entity.
func (c *UserClient) Create() *UserCreate {
	mutation := newUserMutation(c.config, OpCreate)
	return &UserCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of User entities.
func (c *UserClient) CreateBulk(builders ...*UserCreate) *UserCreateBulk {
	return &UserCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserClient) MapCreateBulk(slice any, setFunc func(*UserCreate, int)) *UserCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserCreateBulk{err: fmt.Errorf("calling to UserClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for User.
func (c *UserClient) Update() *UserUpdate {
	mutation := newUserMutation(c.config, OpUpdate)
	return &UserUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserClient) UpdateOne(_m *User) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUser(_m))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserClient) UpdateOneID(id string) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUserID(id))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for User.
func (c *UserClient) Delete() *UserDelete {
	mutation := newUserMutation(c.config, OpDelete)
	return &UserDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserClient) DeleteOne(_m *User) *UserDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserClient) DeleteOneID(id string) *UserDeleteOne {
	builder := c.Delete().Where(user.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserDeleteOne{builder}
}

// Query returns a query builder for User.
func (c *UserClient) Query() *UserQuery {
	return &UserQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUser},
		inters: c.Interceptors(),
	}
}

// Get returns a User entity by its id.
func (c *UserClient) Get(ctx context.Context, id string) (*User, error) {
	return c.Query().Where(user.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserClient) GetX(ctx context.Context, id string) *User {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *UserClient) Hooks() []Hook {
	return c.hooks.User
}

// Interceptors returns the client interceptors.
func (c *UserClient) Interceptors() []Interceptor {
	return c.inters.User
}

func (c *UserClient) mutate(ctx context.Context, m *UserMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown User mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Question, QuotaCounter, Response, ReviewInterval, Session, SessionQuestion,
		ThetaSnapshot, TierConfig, User []ent.Hook
	}
	inters struct {
		Question, QuotaCounter, Response, ReviewInterval, Session, SessionQuestion,
		ThetaSnapshot, TierConfig, User []ent.Interceptor
	}
)
