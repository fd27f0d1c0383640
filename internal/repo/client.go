// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/google/uuid"
	"github.com/mentorly/mentorly_backend/internal/repo/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/mentorly/mentorly_backend/internal/repo/availabilityexception"
	"github.com/mentorly/mentorly_backend/internal/repo/dayavailability"
	"github.com/mentorly/mentorly_backend/internal/repo/mentorservice"
	"github.com/mentorly/mentorly_backend/internal/repo/sessionrequest"
	"github.com/mentorly/mentorly_backend/internal/repo/user"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AvailabilityException is the client for interacting with the AvailabilityException builders.
	AvailabilityException *AvailabilityExceptionClient
	// DayAvailability is the client for interacting with the DayAvailability builders.
	DayAvailability *DayAvailabilityClient
	// MentorService is the client for interacting with the MentorService builders.
	MentorService *MentorServiceClient
	// SessionRequest is the client for interacting with the SessionRequest builders.
	SessionRequest *SessionRequestClient
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
	c.AvailabilityException = NewAvailabilityExceptionClient(c.config)
	c.DayAvailability = NewDayAvailabilityClient(c.config)
	c.MentorService = NewMentorServiceClient(c.config)
	c.SessionRequest = NewSessionRequestClient(c.config)
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
var ErrTxStarted = errors.New("repo: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("repo: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:                   ctx,
		config:                cfg,
		AvailabilityException: NewAvailabilityExceptionClient(cfg),
		DayAvailability:       NewDayAvailabilityClient(cfg),
		MentorService:         NewMentorServiceClient(cfg),
		SessionRequest:        NewSessionRequestClient(cfg),
		User:                  NewUserClient(cfg),
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
		ctx:                   ctx,
		config:                cfg,
		AvailabilityException: NewAvailabilityExceptionClient(cfg),
		DayAvailability:       NewDayAvailabilityClient(cfg),
		MentorService:         NewMentorServiceClient(cfg),
		SessionRequest:        NewSessionRequestClient(cfg),
		User:                  NewUserClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AvailabilityException.
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
	c.AvailabilityException.Use(hooks...)
	c.DayAvailability.Use(hooks...)
	c.MentorService.Use(hooks...)
	c.SessionRequest.Use(hooks...)
	c.User.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.AvailabilityException.Intercept(interceptors...)
	c.DayAvailability.Intercept(interceptors...)
	c.MentorService.Intercept(interceptors...)
	c.SessionRequest.Intercept(interceptors...)
	c.User.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AvailabilityExceptionMutation:
		return c.AvailabilityException.mutate(ctx, m)
	case *DayAvailabilityMutation:
		return c.DayAvailability.mutate(ctx, m)
	case *MentorServiceMutation:
		return c.MentorService.mutate(ctx, m)
	case *SessionRequestMutation:
		return c.SessionRequest.mutate(ctx, m)
	case *UserMutation:
		return c.User.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("repo: unknown mutation type %T", m)
	}
}

// AvailabilityExceptionClient is a client for the AvailabilityException schema.
type AvailabilityExceptionClient struct {
	config
}

// NewAvailabilityExceptionClient returns a client for the AvailabilityException from the given config.
func NewAvailabilityExceptionClient(c config) *AvailabilityExceptionClient {
	return &AvailabilityExceptionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `availabilityexception.Hooks(f(g(h())))`.
func (c *AvailabilityExceptionClient) Use(hooks ...Hook) {
	c.hooks.AvailabilityException = append(c.hooks.AvailabilityException, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `availabilityexception.Intercept(f(g(h())))`.
func (c *AvailabilityExceptionClient) Intercept(interceptors ...Interceptor) {
	c.inters.AvailabilityException = append(c.inters.AvailabilityException, interceptors...)
}

// Create returns a builder for creating a AvailabilityException entity.
func (c *AvailabilityExceptionClient) Create() *AvailabilityExceptionCreate {
	mutation := newAvailabilityExceptionMutation(c.config, OpCreate)
	return &AvailabilityExceptionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AvailabilityException entities.
func (c *AvailabilityExceptionClient) CreateBulk(builders ...*AvailabilityExceptionCreate) *AvailabilityExceptionCreateBulk {
	return &AvailabilityExceptionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AvailabilityExceptionClient) MapCreateBulk(slice any, setFunc func(*AvailabilityExceptionCreate, int)) *AvailabilityExceptionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AvailabilityExceptionCreateBulk{err: fmt.Errorf("calling to AvailabilityExceptionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AvailabilityExceptionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AvailabilityExceptionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AvailabilityException.
func (c *AvailabilityExceptionClient) Update() *AvailabilityExceptionUpdate {
	mutation := newAvailabilityExceptionMutation(c.config, OpUpdate)
	return &AvailabilityExceptionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AvailabilityExceptionClient) UpdateOne(_m *AvailabilityException) *AvailabilityExceptionUpdateOne {
	mutation := newAvailabilityExceptionMutation(c.config, OpUpdateOne, withAvailabilityException(_m))
	return &AvailabilityExceptionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AvailabilityExceptionClient) UpdateOneID(id uuid.UUID) *AvailabilityExceptionUpdateOne {
	mutation := newAvailabilityExceptionMutation(c.config, OpUpdateOne, withAvailabilityExceptionID(id))
	return &AvailabilityExceptionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AvailabilityException.
func (c *AvailabilityExceptionClient) Delete() *AvailabilityExceptionDelete {
	mutation := newAvailabilityExceptionMutation(c.config, OpDelete)
	return &AvailabilityExceptionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AvailabilityExceptionClient) DeleteOne(_m *AvailabilityException) *AvailabilityExceptionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AvailabilityExceptionClient) DeleteOneID(id uuid.UUID) *AvailabilityExceptionDeleteOne {
	builder := c.Delete().Where(availabilityexception.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AvailabilityExceptionDeleteOne{builder}
}

// Query returns a query builder for AvailabilityException.
func (c *AvailabilityExceptionClient) Query() *AvailabilityExceptionQuery {
	return &AvailabilityExceptionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAvailabilityException},
		inters: c.Interceptors(),
	}
}

// Get returns a AvailabilityException entity by its id.
func (c *AvailabilityExceptionClient) Get(ctx context.Context, id uuid.UUID) (*AvailabilityException, error) {
	return c.Query().Where(availabilityexception.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AvailabilityExceptionClient) GetX(ctx context.Context, id uuid.UUID) *AvailabilityException {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AvailabilityExceptionClient) Hooks() []Hook {
	return c.hooks.AvailabilityException
}

// Interceptors returns the client interceptors.
func (c *AvailabilityExceptionClient) Interceptors() []Interceptor {
	return c.inters.AvailabilityException
}

func (c *AvailabilityExceptionClient) mutate(ctx context.Context, m *AvailabilityExceptionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AvailabilityExceptionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AvailabilityExceptionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AvailabilityExceptionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AvailabilityExceptionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown AvailabilityException mutation op: %q", m.Op())
	}
}

// DayAvailabilityClient is a client for the DayAvailability schema.
type DayAvailabilityClient struct {
	config
}

// NewDayAvailabilityClient returns a client for the DayAvailability from the given config.
func NewDayAvailabilityClient(c config) *DayAvailabilityClient {
	return &DayAvailabilityClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `dayavailability.Hooks(f(g(h())))`.
func (c *DayAvailabilityClient) Use(hooks ...Hook) {
	c.hooks.DayAvailability = append(c.hooks.DayAvailability, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `dayavailability.Intercept(f(g(h())))`.
func (c *DayAvailabilityClient) Intercept(interceptors ...Interceptor) {
	c.inters.DayAvailability = append(c.inters.DayAvailability, interceptors...)
}

// Create returns a builder for creating a DayAvailability entity.
func (c *DayAvailabilityClient) Create() *DayAvailabilityCreate {
	mutation := newDayAvailabilityMutation(c.config, OpCreate)
	return &DayAvailabilityCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DayAvailability entities.
func (c *DayAvailabilityClient) CreateBulk(builders ...*DayAvailabilityCreate) *DayAvailabilityCreateBulk {
	return &DayAvailabilityCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DayAvailabilityClient) MapCreateBulk(slice any, setFunc func(*DayAvailabilityCreate, int)) *DayAvailabilityCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DayAvailabilityCreateBulk{err: fmt.Errorf("calling to DayAvailabilityClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DayAvailabilityCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DayAvailabilityCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DayAvailability.
func (c *DayAvailabilityClient) Update() *DayAvailabilityUpdate {
	mutation := newDayAvailabilityMutation(c.config, OpUpdate)
	return &DayAvailabilityUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DayAvailabilityClient) UpdateOne(_m *DayAvailability) *DayAvailabilityUpdateOne {
	mutation := newDayAvailabilityMutation(c.config, OpUpdateOne, withDayAvailability(_m))
	return &DayAvailabilityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DayAvailabilityClient) UpdateOneID(id uuid.UUID) *DayAvailabilityUpdateOne {
	mutation := newDayAvailabilityMutation(c.config, OpUpdateOne, withDayAvailabilityID(id))
	return &DayAvailabilityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DayAvailability.
func (c *DayAvailabilityClient) Delete() *DayAvailabilityDelete {
	mutation := newDayAvailabilityMutation(c.config, OpDelete)
	return &DayAvailabilityDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DayAvailabilityClient) DeleteOne(_m *DayAvailability) *DayAvailabilityDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DayAvailabilityClient) DeleteOneID(id uuid.UUID) *DayAvailabilityDeleteOne {
	builder := c.Delete().Where(dayavailability.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DayAvailabilityDeleteOne{builder}
}

// Query returns a query builder for DayAvailability.
func (c *DayAvailabilityClient) Query() *DayAvailabilityQuery {
	return &DayAvailabilityQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDayAvailability},
		inters: c.Interceptors(),
	}
}

// Get returns a DayAvailability entity by its id.
func (c *DayAvailabilityClient) Get(ctx context.Context, id uuid.UUID) (*DayAvailability, error) {
	return c.Query().Where(dayavailability.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DayAvailabilityClient) GetX(ctx context.Context, id uuid.UUID) *DayAvailability {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *DayAvailabilityClient) Hooks() []Hook {
	return c.hooks.DayAvailability
}

// Interceptors returns the client interceptors.
func (c *DayAvailabilityClient) Interceptors() []Interceptor {
	return c.inters.DayAvailability
}

func (c *DayAvailabilityClient) mutate(ctx context.Context, m *DayAvailabilityMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DayAvailabilityCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DayAvailabilityUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DayAvailabilityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DayAvailabilityDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown DayAvailability mutation op: %q", m.Op())
	}
}

// MentorServiceClient is a client for the MentorService schema.
type MentorServiceClient struct {
	config
}

// NewMentorServiceClient returns a client for the MentorService from the given config.
func NewMentorServiceClient(c config) *MentorServiceClient {
	return &MentorServiceClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `mentorservice.Hooks(f(g(h())))`.
func (c *MentorServiceClient) Use(hooks ...Hook) {
	c.hooks.MentorService = append(c.hooks.MentorService, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `mentorservice.Intercept(f(g(h())))`.
func (c *MentorServiceClient) Intercept(interceptors ...Interceptor) {
	c.inters.MentorService = append(c.inters.MentorService, interceptors...)
}

// Create returns a builder for creating a MentorService entity.
func (c *MentorServiceClient) Create() *MentorServiceCreate {
	mutation := newMentorServiceMutation(c.config, OpCreate)
	return &MentorServiceCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of MentorService entities.
func (c *MentorServiceClient) CreateBulk(builders ...*MentorServiceCreate) *MentorServiceCreateBulk {
	return &MentorServiceCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MentorServiceClient) MapCreateBulk(slice any, setFunc func(*MentorServiceCreate, int)) *MentorServiceCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MentorServiceCreateBulk{err: fmt.Errorf("calling to MentorServiceClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MentorServiceCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MentorServiceCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for MentorService.
func (c *MentorServiceClient) Update() *MentorServiceUpdate {
	mutation := newMentorServiceMutation(c.config, OpUpdate)
	return &MentorServiceUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MentorServiceClient) UpdateOne(_m *MentorService) *MentorServiceUpdateOne {
	mutation := newMentorServiceMutation(c.config, OpUpdateOne, withMentorService(_m))
	return &MentorServiceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MentorServiceClient) UpdateOneID(id uuid.UUID) *MentorServiceUpdateOne {
	mutation := newMentorServiceMutation(c.config, OpUpdateOne, withMentorServiceID(id))
	return &MentorServiceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for MentorService.
func (c *MentorServiceClient) Delete() *MentorServiceDelete {
	mutation := newMentorServiceMutation(c.config, OpDelete)
	return &MentorServiceDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MentorServiceClient) DeleteOne(_m *MentorService) *MentorServiceDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MentorServiceClient) DeleteOneID(id uuid.UUID) *MentorServiceDeleteOne {
	builder := c.Delete().Where(mentorservice.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MentorServiceDeleteOne{builder}
}

// Query returns a query builder for MentorService.
func (c *MentorServiceClient) Query() *MentorServiceQuery {
	return &MentorServiceQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMentorService},
		inters: c.Interceptors(),
	}
}

// Get returns a MentorService entity by its id.
func (c *MentorServiceClient) Get(ctx context.Context, id uuid.UUID) (*MentorService, error) {
	return c.Query().Where(mentorservice.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MentorServiceClient) GetX(ctx context.Context, id uuid.UUID) *MentorService {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *MentorServiceClient) Hooks() []Hook {
	return c.hooks.MentorService
}

// Interceptors returns the client interceptors.
func (c *MentorServiceClient) Interceptors() []Interceptor {
	return c.inters.MentorService
}

func (c *MentorServiceClient) mutate(ctx context.Context, m *MentorServiceMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MentorServiceCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MentorServiceUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MentorServiceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MentorServiceDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown MentorService mutation op: %q", m.Op())
	}
}

// SessionRequestClient is a client for the SessionRequest schema.
type SessionRequestClient struct {
	config
}

// NewSessionRequestClient returns a client for the SessionRequest from the given config.
func NewSessionRequestClient(c config) *SessionRequestClient {
	return &SessionRequestClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `sessionrequest.Hooks(f(g(h())))`.
func (c *SessionRequestClient) Use(hooks ...Hook) {
	c.hooks.SessionRequest = append(c.hooks.SessionRequest, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `sessionrequest.Intercept(f(g(h())))`.
func (c *SessionRequestClient) Intercept(interceptors ...Interceptor) {
	c.inters.SessionRequest = append(c.inters.SessionRequest, interceptors...)
}

// Create returns a builder for creating a SessionRequest entity.
func (c *SessionRequestClient) Create() *SessionRequestCreate {
	mutation := newSessionRequestMutation(c.config, OpCreate)
	return &SessionRequestCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SessionRequest entities.
func (c *SessionRequestClient) CreateBulk(builders ...*SessionRequestCreate) *SessionRequestCreateBulk {
	return &SessionRequestCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SessionRequestClient) MapCreateBulk(slice any, setFunc func(*SessionRequestCreate, int)) *SessionRequestCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SessionRequestCreateBulk{err: fmt.Errorf("calling to SessionRequestClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SessionRequestCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SessionRequestCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SessionRequest.
func (c *SessionRequestClient) Update() *SessionRequestUpdate {
	mutation := newSessionRequestMutation(c.config, OpUpdate)
	return &SessionRequestUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SessionRequestClient) UpdateOne(_m *SessionRequest) *SessionRequestUpdateOne {
	mutation := newSessionRequestMutation(c.config, OpUpdateOne, withSessionRequest(_m))
	return &SessionRequestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SessionRequestClient) UpdateOneID(id uuid.UUID) *SessionRequestUpdateOne {
	mutation := newSessionRequestMutation(c.config, OpUpdateOne, withSessionRequestID(id))
	return &SessionRequestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SessionRequest.
func (c *SessionRequestClient) Delete() *SessionRequestDelete {
	mutation := newSessionRequestMutation(c.config, OpDelete)
	return &SessionRequestDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SessionRequestClient) DeleteOne(_m *SessionRequest) *SessionRequestDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SessionRequestClient) DeleteOneID(id uuid.UUID) *SessionRequestDeleteOne {
	builder := c.Delete().Where(sessionrequest.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SessionRequestDeleteOne{builder}
}

// Query returns a query builder for SessionRequest.
func (c *SessionRequestClient) Query() *SessionRequestQuery {
	return &SessionRequestQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSessionRequest},
		inters: c.Interceptors(),
	}
}

// Get returns a SessionRequest entity by its id.
func (c *SessionRequestClient) Get(ctx context.Context, id uuid.UUID) (*SessionRequest, error) {
	return c.Query().Where(sessionrequest.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SessionRequestClient) GetX(ctx context.Context, id uuid.UUID) *SessionRequest {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SessionRequestClient) Hooks() []Hook {
	return c.hooks.SessionRequest
}

// Interceptors returns the client interceptors.
func (c *SessionRequestClient) Interceptors() []Interceptor {
	return c.inters.SessionRequest
}

func (c *SessionRequestClient) mutate(ctx context.Context, m *SessionRequestMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SessionRequestCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SessionRequestUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SessionRequestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SessionRequestDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown SessionRequest mutation op: %q", m.Op())
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
func (c *UserClient) UpdateOneID(id uuid.UUID) *UserUpdateOne {
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
func (c *UserClient) DeleteOneID(id uuid.UUID) *UserDeleteOne {
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
func (c *UserClient) Get(ctx context.Context, id uuid.UUID) (*User, error) {
	return c.Query().Where(user.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserClient) GetX(ctx context.Context, id uuid.UUID) *User {
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
		return nil, fmt.Errorf("repo: unknown User mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AvailabilityException, DayAvailability, MentorService, SessionRequest,
		User []ent.Hook
	}
	inters struct {
		AvailabilityException, DayAvailability, MentorService, SessionRequest,
		User []ent.Interceptor
	}
)
