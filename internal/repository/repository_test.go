package repository

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/labstack/gommon/log"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/require"

	"github.com/fieldsales/visits/internal/migration"
	"github.com/fieldsales/visits/internal/model"
	"github.com/fieldsales/visits/pkg/db/transactor"
)

const connectionTimeout = 3 * time.Second

const (
	pgContainerName = "pg-test-visits"
	pgPort          = "5432"
	pgTestUser      = "test"
	pgTestPassword  = "test"
	pgTestDB        = "visits"
)

var pgPool *pgxpool.Pool

func TestMain(m *testing.M) {
	// build docker pool
	dockerPool, err := dockertest.NewPool("")
	if err != nil {
		log.Fatalf("failed to create pool - %v", err)
	}

	if err := dockerPool.Client.Ping(); err != nil {
		log.Fatalf("failed to connect to docker - %v", err)
	}

	// start postgres
	postgres, err := dockerPool.RunWithOptions(&dockertest.RunOptions{
		Name:       pgContainerName,
		Repository: "postgres",
		Tag:        "latest",
		Env: []string{
			fmt.Sprintf("POSTGRES_USER=%s", pgTestUser),
			fmt.Sprintf("POSTGRES_PASSWORD=%s", pgTestPassword),
			fmt.Sprintf("POSTGRES_DB=%s", pgTestDB),
		},
		PortBindings: map[docker.Port][]docker.PortBinding{
			"5432/tcp": {{HostIP: "localhost", HostPort: fmt.Sprintf("%s/tcp", pgPort)}},
		},
	})
	if err != nil {
		log.Fatalf("failed to start postgresql - %v", err)
	}

	// connect to postgres
	pgUri := fmt.Sprintf("postgres://%s:%s@localhost:%s/%s?sslmode=disable", pgTestUser, pgTestPassword, pgPort, pgTestDB)
	err = dockerPool.Retry(func() error {
		ctx, cancel := context.WithTimeout(context.Background(), connectionTimeout)
		defer cancel()

		var err error
		pgPool, err = pgxpool.Connect(ctx, pgUri)
		if err != nil {
			return err
		}
		return pgPool.Ping(ctx)
	})
	if err != nil {
		log.Fatalf("failed to establish connection to postgresql - %v", err)
	}

	// run migrations
	migrationsPath, err := filepath.Abs("../../migrations")
	if err != nil {
		log.Fatalf("failed to find migrations path - %v", err)
	}

	if err := migration.NewRunner(transactor.NewPgxTransactor(pgPool), migrationsPath).Run(context.Background()); err != nil {
		log.Fatalf("failed to run migrations - %v", err)
	}

	// start tests
	code := m.Run()

	// purge postgresql
	if err := dockerPool.Purge(postgres); err != nil {
		log.Fatalf("failed to purge postgresql - %v", err)
	}

	os.Exit(code)
}

func TestUserRps(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	userRps := NewPostgresUserRepository(transactor.NewPgxTransactor(pgPool))

	u := &model.User{
		ID:           "f9771714-df35-4186-b1f1-57fba3e5d3f2",
		Email:        "rep1@fieldsales.io",
		PasswordHash: "f929cb58673be0a35fcb22ad7f147bd1",
		FullName:     "First Representative",
		Role:         model.RoleUser,
	}

	t.Log("create user")
	{
		err := userRps.Create(ctx, u)
		require.NoError(t, err, "failed to create user")
	}

	t.Log("find user by id")
	{
		dbUser, err := userRps.FindByID(ctx, u.ID)
		require.NoError(t, err, "failed to read user by id")
		require.NotNil(t, dbUser, "user was created recently but not found by id")
		require.True(t, dbUser.IsActive, "new user must be active by default")
	}

	t.Log("find user by email")
	{
		dbUser, err := userRps.FindByEmail(ctx, u.Email)
		require.NoError(t, err, "failed to read user by email")
		require.NotNil(t, dbUser, "user was created recently but not found by email")
	}

	t.Log("create user duplicate")
	{
		err := userRps.Create(ctx, u)
		require.Error(t, err, "aimed to create user duplicate but no error raised")
	}

	t.Log("record login")
	{
		loginAt := time.Now().UTC()
		err := userRps.RecordLogin(ctx, u.ID, loginAt)
		require.NoError(t, err, "failed to record login")

		dbUser, err := userRps.FindByID(ctx, u.ID)
		require.NoError(t, err, "failed to read user by id")
		require.NotNil(t, dbUser.LastLogin, "last login was recorded but is empty")
	}

	t.Log("update user")
	{
		territory := "Netherlands North"
		role := model.RoleManager
		dbUser, err := userRps.Update(ctx, u.ID, &UserUpdate{Role: &role, Territory: &territory})
		require.NoError(t, err, "failed to update user")
		require.NotNil(t, dbUser, "user exists but update reported it absent")
		require.Equal(t, role, dbUser.Role, "role was updated but not persisted")
		require.Equal(t, &territory, dbUser.Territory, "territory was updated but not persisted")
	}

	t.Log("replace permissions")
	{
		permissions := map[string]bool{"visits.export": true, "reports.view": false}
		dbUser, err := userRps.UpdatePermissions(ctx, u.ID, permissions)
		require.NoError(t, err, "failed to update permissions")
		require.NotNil(t, dbUser, "user exists but permissions update reported it absent")
		require.Equal(t, permissions, dbUser.Permissions, "permission map was replaced but not persisted")
	}

	t.Log("deactivate user keeps the record")
	{
		deactivated, err := userRps.Deactivate(ctx, u.ID)
		require.NoError(t, err, "failed to deactivate user")
		require.True(t, deactivated, "user exists but deactivation reported it absent")

		dbUser, err := userRps.FindByID(ctx, u.ID)
		require.NoError(t, err, "failed to read user by id")
		require.NotNil(t, dbUser, "deactivated user must stay in database")
		require.False(t, dbUser.IsActive, "deactivated user must not be active")
	}
}

func TestCustomerRps(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	customerRps := NewPostgresCustomerRepository(pgPool)

	city := "Utrecht"
	c := &model.Customer{
		ID:       "53b9062b-0f45-4671-8c01-52fce0d8c750",
		ShopName: "Urban Roots",
		ShopType: model.ShopTypeGrowshop,
		City:     &city,
		Status:   model.CustomerStatusActive,
	}

	t.Log("create customer")
	{
		err := customerRps.Create(ctx, c)
		require.NoError(t, err, "failed to create customer")
	}

	t.Log("find customer by id")
	{
		dbCustomer, err := customerRps.FindByID(ctx, c.ID)
		require.NoError(t, err, "failed to read customer")
		require.NotNil(t, dbCustomer, "customer was created, but not found in database")
		require.Equal(t, c.ShopName, dbCustomer.ShopName, "shop name differs from the created one")
	}

	t.Log("active listing contains the new customer")
	{
		dbCustomers, err := customerRps.FindAllActive(ctx)
		require.NoError(t, err, "failed to read customers")

		var found bool
		for _, dbCustomer := range dbCustomers {
			if dbCustomer.ID == c.ID {
				found = true
				break
			}
		}
		require.True(t, found, "active customer must be listed")
	}

	t.Log("deactivated customer disappears from the listing")
	{
		status := model.CustomerStatusInactive
		dbCustomer, err := customerRps.Update(ctx, c.ID, &CustomerUpdate{Status: &status})
		require.NoError(t, err, "failed to update customer")
		require.NotNil(t, dbCustomer, "customer exists but update reported it absent")

		dbCustomers, err := customerRps.FindAllActive(ctx)
		require.NoError(t, err, "failed to read customers")
		for _, dbCustomer := range dbCustomers {
			require.NotEqual(t, c.ID, dbCustomer.ID, "inactive customer must not be listed")
		}
	}

	t.Log("delete customer")
	{
		deleted, err := customerRps.DeleteByID(ctx, c.ID)
		require.NoError(t, err, "failed to delete customer")
		require.True(t, deleted, "customer exists but deletion reported it absent")

		dbCustomer, err := customerRps.FindByID(ctx, c.ID)
		require.NoError(t, err, "failed to read customer by id")
		require.Nil(t, dbCustomer, "customer was deleted, but still present in database")
	}
}

func TestVisitRps(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	userRps := NewPostgresUserRepository(transactor.NewPgxTransactor(pgPool))
	customerRps := NewPostgresCustomerRepository(pgPool)
	visitRps := NewPostgresVisitRepository(pgPool)

	owner := &model.User{
		ID:           "afa94457-c29a-4569-a4aa-0ae3b7e5a255",
		Email:        "rep2@fieldsales.io",
		PasswordHash: "7c9fb260749f6d1cf54530450ac97f72",
		FullName:     "Second Representative",
		Role:         model.RoleUser,
	}

	stranger := &model.User{
		ID:           "0583d7f3-5ae1-416a-92fa-120851905551",
		Email:        "rep3@fieldsales.io",
		PasswordHash: "966ac2a7543413f3368a2fc3ca889f98",
		FullName:     "Third Representative",
		Role:         model.RoleUser,
	}

	customer := &model.Customer{
		ID:       "48fa2e4f-7937-4257-ac61-a42ef9f45f69",
		ShopName: "Leafline Nursery",
		ShopType: model.ShopTypeNursery,
		Status:   model.CustomerStatusActive,
	}

	notes := "shelf placement improved since last visit"
	v := &model.Visit{
		ID:                     "19264f8d-8862-47e0-9892-44930e2de59f",
		CustomerID:             customer.ID,
		UserID:                 owner.ID,
		ShopName:               customer.ShopName,
		VisitDate:              time.Now().UTC().Truncate(time.Second),
		VisitPurpose:           "routine_check",
		ProductVisibilityScore: 80,
		ProductsDiscussed:      []string{"coco_professional", "root_stimulator"},
		TrainingProvided:       true,
		CommercialOutcome:      "new_order",
		OverallSatisfaction:    9,
		Notes:                  &notes,
		Photos:                 []string{},
		CalculatedScore:        91.5,
		PriorityLevel:          "low",
	}

	t.Log("reference records must be added")
	{
		require.NoError(t, userRps.Create(ctx, owner), "failed to create user %s", owner.Email)
		require.NoError(t, userRps.Create(ctx, stranger), "failed to create user %s", stranger.Email)
		require.NoError(t, customerRps.Create(ctx, customer), "failed to create customer")
	}

	t.Log("create visit")
	{
		err := visitRps.Create(ctx, v)
		require.NoError(t, err, "failed to create visit")
	}

	t.Log("owner finds own visit")
	{
		dbVisit, err := visitRps.FindByID(ctx, v.ID, owner.ID)
		require.NoError(t, err, "failed to read visit")
		require.NotNil(t, dbVisit, "visit was created, but not found for its owner")
		require.Equal(t, v.CalculatedScore, dbVisit.CalculatedScore, "stored score differs from the created one")
		require.Equal(t, v.ProductsDiscussed, dbVisit.ProductsDiscussed, "stored products differ from the created ones")
	}

	t.Log("visit listing joins customer shop name")
	{
		dbVisits, err := visitRps.FindAll(ctx, owner.ID, VisitFilter{OrderBy: "visit_date", Descending: true, Limit: 100})
		require.NoError(t, err, "failed to read visits")
		require.Len(t, dbVisits, 1, "owner must see exactly own visits")
		require.NotNil(t, dbVisits[0].CustomerShopName, "customer shop name must be joined")
		require.Equal(t, customer.ShopName, *dbVisits[0].CustomerShopName, "joined shop name differs from the customer record")
	}

	t.Log("stranger does not see the visit")
	{
		dbVisit, err := visitRps.FindByID(ctx, v.ID, stranger.ID)
		require.NoError(t, err, "failed to read visit")
		require.Nil(t, dbVisit, "visit of another user must not be visible")
	}

	t.Log("unscoped query sees the visit")
	{
		dbVisit, err := visitRps.FindByID(ctx, v.ID, "")
		require.NoError(t, err, "failed to read visit")
		require.NotNil(t, dbVisit, "unscoped query must see every visit")
	}

	t.Log("update visit rewrites derived fields")
	{
		satisfaction := 2.0
		dbVisit, err := visitRps.Update(ctx, v.ID, owner.ID, &VisitUpdate{
			OverallSatisfaction: &satisfaction,
			CalculatedScore:     5,
			PriorityLevel:       "high",
		})
		require.NoError(t, err, "failed to update visit")
		require.NotNil(t, dbVisit, "visit exists but update reported it absent")
		require.Equal(t, satisfaction, dbVisit.OverallSatisfaction, "satisfaction was updated but not persisted")
		require.Equal(t, float64(5), dbVisit.CalculatedScore, "derived score was not rewritten")
		require.Equal(t, "high", dbVisit.PriorityLevel, "derived priority was not rewritten")
	}

	t.Log("stranger cannot delete the visit")
	{
		deleted, err := visitRps.DeleteByID(ctx, v.ID, stranger.ID)
		require.NoError(t, err, "failed to delete visit")
		require.False(t, deleted, "visit of another user must not be deletable")
	}

	t.Log("owner deletes the visit")
	{
		deleted, err := visitRps.DeleteByID(ctx, v.ID, owner.ID)
		require.NoError(t, err, "failed to delete visit")
		require.True(t, deleted, "visit exists but deletion reported it absent")
	}
}

func TestConfigurationRps(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	configRps := NewPostgresConfigurationRepository(pgPool)

	configs := []*model.Configuration{
		{ID: "55ed2faa-de40-4344-a512-0ffbc43d4184", ConfigType: "shelf_zones", ConfigName: "Eye Level", ConfigValue: "eye_level", DisplayOrder: 2, IsActive: true},
		{ID: "112a54c0-e744-4712-8acf-59e6b1a386e5", ConfigType: "shelf_zones", ConfigName: "Checkout", ConfigValue: "checkout", DisplayOrder: 1, IsActive: true},
		{ID: "3b9974de-ed71-4a5d-9121-42213e526234", ConfigType: "shelf_zones", ConfigName: "Backroom", ConfigValue: "backroom", DisplayOrder: 3, IsActive: false},
	}

	t.Logf("create %d configurations", len(configs))
	{
		for _, c := range configs {
			require.NoError(t, configRps.Create(ctx, c), "failed to create configuration %s", c.ConfigValue)
		}
	}

	t.Log("active entries of the type come ordered by display order")
	{
		dbConfigs, err := configRps.FindActive(ctx, "shelf_zones")
		require.NoError(t, err, "failed to read configurations")
		require.Len(t, dbConfigs, 2, "inactive entries must be filtered out")
		require.Equal(t, "checkout", dbConfigs[0].ConfigValue, "entries must be ordered by display order")
		require.Equal(t, "eye_level", dbConfigs[1].ConfigValue, "entries must be ordered by display order")
	}

	t.Log("update configuration")
	{
		isActive := true
		dbConfig, err := configRps.Update(ctx, configs[2].ID, &ConfigurationUpdate{IsActive: &isActive})
		require.NoError(t, err, "failed to update configuration")
		require.NotNil(t, dbConfig, "configuration exists but update reported it absent")
		require.True(t, dbConfig.IsActive, "configuration was activated but not persisted")
	}

	t.Log("delete configuration")
	{
		deleted, err := configRps.DeleteByID(ctx, configs[2].ID)
		require.NoError(t, err, "failed to delete configuration")
		require.True(t, deleted, "configuration exists but deletion reported it absent")

		dbConfig, err := configRps.FindByID(ctx, configs[2].ID)
		require.NoError(t, err, "failed to read configuration by id")
		require.Nil(t, dbConfig, "configuration was deleted, but still present in database")
	}
}
