package queries_test

import (
	"context"
	"testing"
	"time"

	"logistics/internal/adapters/out/postgres"
	"logistics/internal/adapters/out/postgres/pgtest"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/job"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/vehicle"
	"logistics/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

var baseTime = time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)

type QueriesIntegrationTestSuite struct {
	suite.Suite
	database *pgtest.Database
	factory  *postgres.GormUnitOfWorkFactory

	listJobs     queries.ListJobsQueryHandler
	getJob       queries.GetJobQueryHandler
	listVehicles queries.ListVehiclesQueryHandler
	getVehicle   queries.GetVehicleByRegistrationQueryHandler
}

func (suite *QueriesIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background(), postgres.Migrate)
	suite.Require().NoError(err)
	suite.database = database

	suite.factory = postgres.NewGormUnitOfWorkFactory(database.DB, nil)
	suite.listJobs = queries.NewListJobsQueryHandler(database.DB)
	suite.getJob = queries.NewGetJobQueryHandler(database.DB)
	suite.listVehicles = queries.NewListVehiclesQueryHandler(database.DB)
	suite.getVehicle = queries.NewGetVehicleByRegistrationQueryHandler(database.DB)
}

func (suite *QueriesIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate(postgres.TableNames()...))
}

func (suite *QueriesIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Terminate(context.Background()))
}

func (suite *QueriesIntegrationTestSuite) addVehicle(value string) vehicle.Registration {
	ctx := context.Background()
	reg, err := vehicle.NewRegistration(value)
	suite.Require().NoError(err)
	v, err := vehicle.NewVehicle(reg)
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.VehicleRepository().Add(ctx, v))
	suite.Require().NoError(uow.Commit(ctx))
	return reg
}

type seedJob struct {
	city      string
	income    string
	cost      string
	vehicle   *vehicle.Registration
	completed bool
	minute    int
}

func (suite *QueriesIntegrationTestSuite) addJob(seed seedJob) *job.Job {
	ctx := context.Background()

	addr, err := job.NewAddress(kernel.NewUUID(), job.AddressFields{
		Recipient:     "Jane Doe",
		StreetAddress: "1901 W Madison St",
		City:          seed.city,
		State:         "AZ",
		ZipCode:       "85009",
	})
	suite.Require().NoError(err)

	slot, err := kernel.NewDeliverySlot(baseTime.Add(time.Hour), baseTime.Add(3*time.Hour))
	suite.Require().NoError(err)

	j, err := job.NewJob(
		kernel.NewUUID(),
		addr,
		kernel.NewMoney(decimal.RequireFromString(seed.income)),
		kernel.NewMoney(decimal.RequireFromString(seed.cost)),
		slot,
		baseTime.Add(time.Duration(seed.minute)*time.Minute),
	)
	suite.Require().NoError(err)

	if seed.vehicle != nil {
		suite.Require().NoError(j.AssignVehicle(*seed.vehicle))
		if seed.completed {
			suite.Require().NoError(j.Complete(baseTime.Add(5 * time.Hour)))
		}
	}

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.JobRepository().Add(ctx, j))
	suite.Require().NoError(uow.Commit(ctx))
	return j
}

func (suite *QueriesIntegrationTestSuite) page(first *int, after *string) queries.PageRequest {
	page, err := queries.NewPageRequest(first, after)
	suite.Require().NoError(err)
	return page
}

func (suite *QueriesIntegrationTestSuite) jobIDs(response queries.ListJobsResponse) []string {
	ids := make([]string, 0, len(response.Edges))
	for _, edge := range response.Edges {
		ids = append(ids, edge.Node.ID().String())
	}
	return ids
}

func (suite *QueriesIntegrationTestSuite) registrations(response queries.ListVehiclesResponse) []string {
	regs := make([]string, 0, len(response.Edges))
	for _, edge := range response.Edges {
		regs = append(regs, edge.Node.Registration)
	}
	return regs
}

func (suite *QueriesIntegrationTestSuite) TestListJobs_OrdersByCreationAndComputesTotals() {
	ctx := context.Background()
	second := suite.addJob(seedJob{city: "Tempe", income: "30.55", cost: "10.00", minute: 2})
	first := suite.addJob(seedJob{city: "Phoenix", income: "114.30", cost: "20.55", minute: 1})

	response, err := suite.listJobs.Handle(ctx, queries.NewListJobsQuery(queries.JobFilter{}, suite.page(nil, nil)))

	suite.Require().NoError(err)
	suite.Equal([]string{first.ID().String(), second.ID().String()}, suite.jobIDs(response))
	suite.Equal(2, response.Totals.Count)
	suite.Equal("144.85", response.Totals.Income.String())
	suite.Equal("30.55", response.Totals.Cost.String())
	suite.Equal("Phoenix", response.Edges[0].Node.Destination().City())
	suite.Equal(time.UTC, response.Edges[0].Node.CreatedAt().Location())
}

func (suite *QueriesIntegrationTestSuite) TestListJobs_Filters() {
	ctx := context.Background()
	reg := suite.addVehicle("ABC123")
	unassigned := suite.addJob(seedJob{city: "Phoenix", income: "10.00", cost: "1.00", minute: 1})
	assigned := suite.addJob(seedJob{city: "Tempe", income: "50.00", cost: "5.00", vehicle: &reg, minute: 2})
	completed := suite.addJob(seedJob{city: "Mesa", income: "90.00", cost: "9.00", vehicle: &reg, completed: true, minute: 3})

	isNull := true
	notNull := false
	contains := "BC"
	city := "emp"
	minIncome := decimal.RequireFromString("50")

	tests := []struct {
		name   string
		filter func(f *queries.JobFilter)
		want   []string
	}{
		{
			name:   "unassigned",
			filter: func(f *queries.JobFilter) { f.Vehicle.IsNull = &isNull },
			want:   []string{unassigned.ID().String()},
		},
		{
			name:   "vehicle contains",
			filter: func(f *queries.JobFilter) { f.Vehicle.Contains = &contains },
			want:   []string{assigned.ID().String(), completed.ID().String()},
		},
		{
			name:   "not completed",
			filter: func(f *queries.JobFilter) { f.CompletedAt.IsNull = &isNull },
			want:   []string{unassigned.ID().String(), assigned.ID().String()},
		},
		{
			name:   "completed",
			filter: func(f *queries.JobFilter) { f.CompletedAt.IsNull = &notNull },
			want:   []string{completed.ID().String()},
		},
		{
			name:   "destination city contains",
			filter: func(f *queries.JobFilter) { f.Destination.City.Contains = &city },
			want:   []string{assigned.ID().String()},
		},
		{
			name:   "income at least",
			filter: func(f *queries.JobFilter) { f.Income.Gte = &minIncome },
			want:   []string{assigned.ID().String(), completed.ID().String()},
		},
		{
			name: "conditions combine",
			filter: func(f *queries.JobFilter) {
				f.Income.Gte = &minIncome
				f.CompletedAt.IsNull = &isNull
			},
			want: []string{assigned.ID().String()},
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			filter := queries.JobFilter{}
			tt.filter(&filter)

			response, err := suite.listJobs.Handle(ctx, queries.NewListJobsQuery(filter, suite.page(nil, nil)))

			suite.Require().NoError(err)
			suite.Equal(tt.want, suite.jobIDs(response))
			suite.Equal(len(tt.want), response.Totals.Count)
		})
	}
}

func (suite *QueriesIntegrationTestSuite) TestListJobs_LikeWildcardsAreLiteral() {
	ctx := context.Background()
	suite.addJob(seedJob{city: "Phoenix", income: "1.00", cost: "1.00", minute: 1})

	wildcard := "%"
	filter := queries.JobFilter{}
	filter.Destination.City.Contains = &wildcard

	response, err := suite.listJobs.Handle(ctx, queries.NewListJobsQuery(filter, suite.page(nil, nil)))

	suite.Require().NoError(err)
	suite.Empty(response.Edges)
	suite.Equal("0.00", response.Totals.Income.String())
}

func (suite *QueriesIntegrationTestSuite) TestListJobs_Pagination() {
	ctx := context.Background()
	amounts := []struct{ income, cost string }{
		{"10.00", "1.00"},
		{"20.50", "2.25"},
		{"300.00", "30.00"},
		{"4000.00", "400.00"},
		{"0.05", "0.01"},
	}
	var all []string
	for i, a := range amounts {
		all = append(all, suite.addJob(seedJob{city: "Phoenix", income: a.income, cost: a.cost, minute: i}).ID().String())
	}

	first := 2
	firstPage, err := suite.listJobs.Handle(ctx, queries.NewListJobsQuery(queries.JobFilter{}, suite.page(&first, nil)))
	suite.Require().NoError(err)
	suite.Equal(all[:2], suite.jobIDs(firstPage))
	suite.True(firstPage.PageInfo.HasNextPage)
	suite.False(firstPage.PageInfo.HasPreviousPage)
	suite.Equal(2, firstPage.Totals.Count)
	suite.Equal("30.50", firstPage.Totals.Income.String())
	suite.Equal("3.25", firstPage.Totals.Cost.String())

	secondPage, err := suite.listJobs.Handle(ctx,
		queries.NewListJobsQuery(queries.JobFilter{}, suite.page(&first, firstPage.PageInfo.EndCursor)))
	suite.Require().NoError(err)
	suite.Equal(all[2:4], suite.jobIDs(secondPage))
	suite.True(secondPage.PageInfo.HasNextPage)
	suite.True(secondPage.PageInfo.HasPreviousPage)
	suite.Equal(2, secondPage.Totals.Count)
	suite.Equal("4300.00", secondPage.Totals.Income.String())
	suite.Equal("430.00", secondPage.Totals.Cost.String())

	lastPage, err := suite.listJobs.Handle(ctx,
		queries.NewListJobsQuery(queries.JobFilter{}, suite.page(&first, secondPage.PageInfo.EndCursor)))
	suite.Require().NoError(err)
	suite.Equal(all[4:], suite.jobIDs(lastPage))
	suite.False(lastPage.PageInfo.HasNextPage)
	suite.Equal(1, lastPage.Totals.Count)
	suite.Equal("0.05", lastPage.Totals.Income.String())
	suite.Equal("0.01", lastPage.Totals.Cost.String())
}

func (suite *QueriesIntegrationTestSuite) TestGetJob() {
	ctx := context.Background()
	reg := suite.addVehicle("ABC123")
	stored := suite.addJob(seedJob{city: "Tempe", income: "12.34", cost: "5.67", vehicle: &reg, minute: 1})

	query, err := queries.NewGetJobQuery(stored.ID())
	suite.Require().NoError(err)

	got, err := suite.getJob.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.True(stored.IsEqual(got))
	suite.Equal("ABC123", got.Vehicle().String())
	suite.Equal("12.34", got.Income().String())
	suite.Equal(job.Assigned, got.Status())
}

func (suite *QueriesIntegrationTestSuite) TestGetJob_NotFound() {
	query, err := queries.NewGetJobQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = suite.getJob.Handle(context.Background(), query)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueriesIntegrationTestSuite) TestListVehicles_TotalsAndOrdering() {
	ctx := context.Background()
	abc := suite.addVehicle("ABC123")
	xyz := suite.addVehicle("XYZ789")
	suite.addVehicle("MNO456")
	suite.addJob(seedJob{city: "Phoenix", income: "10.00", cost: "1.00", vehicle: &abc, minute: 1})
	suite.addJob(seedJob{city: "Tempe", income: "20.50", cost: "2.25", vehicle: &abc, minute: 2})
	suite.addJob(seedJob{city: "Mesa", income: "100.00", cost: "0.50", vehicle: &xyz, minute: 3})
	suite.addJob(seedJob{city: "Mesa", income: "999.00", cost: "99.00", minute: 4})

	byRegistration, err := suite.listVehicles.Handle(ctx,
		queries.NewListVehiclesQuery(queries.VehicleFilter{}, queries.OrderByRegistration, suite.page(nil, nil)))
	suite.Require().NoError(err)
	suite.Equal([]string{"ABC123", "MNO456", "XYZ789"}, suite.registrations(byRegistration))
	suite.Equal("30.50", byRegistration.Edges[0].Node.TotalIncome.String())
	suite.Equal("3.25", byRegistration.Edges[0].Node.TotalCost.String())
	suite.Equal("0.00", byRegistration.Edges[1].Node.TotalIncome.String())

	byIncome, err := suite.listVehicles.Handle(ctx,
		queries.NewListVehiclesQuery(queries.VehicleFilter{}, queries.OrderByTotalIncomeDesc, suite.page(nil, nil)))
	suite.Require().NoError(err)
	suite.Equal([]string{"XYZ789", "ABC123", "MNO456"}, suite.registrations(byIncome))

	byCost, err := suite.listVehicles.Handle(ctx,
		queries.NewListVehiclesQuery(queries.VehicleFilter{}, queries.OrderByTotalCost, suite.page(nil, nil)))
	suite.Require().NoError(err)
	suite.Equal([]string{"MNO456", "XYZ789", "ABC123"}, suite.registrations(byCost))
}

func (suite *QueriesIntegrationTestSuite) TestListVehicles_TiesBreakOnRegistration() {
	ctx := context.Background()
	suite.addVehicle("ZZZ999")
	suite.addVehicle("AAA111")

	response, err := suite.listVehicles.Handle(ctx,
		queries.NewListVehiclesQuery(queries.VehicleFilter{}, queries.OrderByTotalIncomeDesc, suite.page(nil, nil)))

	suite.Require().NoError(err)
	suite.Equal([]string{"AAA111", "ZZZ999"}, suite.registrations(response))
}

func (suite *QueriesIntegrationTestSuite) TestListVehicles_JobFilterKeepsFullTotals() {
	ctx := context.Background()
	abc := suite.addVehicle("ABC123")
	xyz := suite.addVehicle("XYZ789")
	suite.addVehicle("MNO456")
	suite.addJob(seedJob{city: "Phoenix", income: "10.00", cost: "1.00", vehicle: &abc, minute: 1})
	suite.addJob(seedJob{city: "Tempe", income: "20.00", cost: "2.00", vehicle: &abc, minute: 2})
	suite.addJob(seedJob{city: "Mesa", income: "100.00", cost: "3.00", vehicle: &xyz, completed: true, minute: 3})

	city := "Tempe"
	filter := queries.VehicleFilter{}
	filter.Jobs.Destination.City.Exact = &city

	response, err := suite.listVehicles.Handle(ctx,
		queries.NewListVehiclesQuery(filter, queries.OrderByRegistration, suite.page(nil, nil)))

	suite.Require().NoError(err)
	suite.Equal([]string{"ABC123"}, suite.registrations(response))
	suite.Equal("30.00", response.Edges[0].Node.TotalIncome.String())

	notNull := false
	completedFilter := queries.VehicleFilter{}
	completedFilter.Jobs.CompletedAt.IsNull = &notNull

	response, err = suite.listVehicles.Handle(ctx,
		queries.NewListVehiclesQuery(completedFilter, queries.OrderByRegistration, suite.page(nil, nil)))

	suite.Require().NoError(err)
	suite.Equal([]string{"XYZ789"}, suite.registrations(response))
}

func (suite *QueriesIntegrationTestSuite) TestListVehicles_SingleJobMustMatchAllConditions() {
	ctx := context.Background()
	abc := suite.addVehicle("ABC123")
	suite.addJob(seedJob{city: "Phoenix", income: "500.00", cost: "1.00", vehicle: &abc, minute: 1})
	suite.addJob(seedJob{city: "Tempe", income: "5.00", cost: "1.00", vehicle: &abc, minute: 2})

	city := "Tempe"
	minIncome := decimal.RequireFromString("100")
	filter := queries.VehicleFilter{}
	filter.Jobs.Destination.City.Exact = &city
	filter.Jobs.Income.Gte = &minIncome

	response, err := suite.listVehicles.Handle(ctx,
		queries.NewListVehiclesQuery(filter, queries.OrderByRegistration, suite.page(nil, nil)))

	suite.Require().NoError(err)
	suite.Empty(response.Edges)
}

func (suite *QueriesIntegrationTestSuite) TestListVehicles_RegistrationFilterAndPagination() {
	ctx := context.Background()
	for _, reg := range []string{"ABC001", "ABC002", "ABC003", "XYZ001"} {
		suite.addVehicle(reg)
	}

	contains := "ABC"
	first := 2
	filter := queries.VehicleFilter{Registration: queries.RegistrationFilter{Contains: &contains}}

	firstPage, err := suite.listVehicles.Handle(ctx,
		queries.NewListVehiclesQuery(filter, queries.OrderByRegistration, suite.page(&first, nil)))
	suite.Require().NoError(err)
	suite.Equal([]string{"ABC001", "ABC002"}, suite.registrations(firstPage))
	suite.True(firstPage.PageInfo.HasNextPage)

	secondPage, err := suite.listVehicles.Handle(ctx,
		queries.NewListVehiclesQuery(filter, queries.OrderByRegistration, suite.page(&first, firstPage.PageInfo.EndCursor)))
	suite.Require().NoError(err)
	suite.Equal([]string{"ABC003"}, suite.registrations(secondPage))
	suite.False(secondPage.PageInfo.HasNextPage)
	suite.True(secondPage.PageInfo.HasPreviousPage)
}

func (suite *QueriesIntegrationTestSuite) TestGetVehicleByRegistration() {
	ctx := context.Background()
	abc := suite.addVehicle("ABC123")
	suite.addJob(seedJob{city: "Phoenix", income: "10.10", cost: "1.01", vehicle: &abc, minute: 1})
	suite.addJob(seedJob{city: "Tempe", income: "20.20", cost: "2.02", vehicle: &abc, minute: 2})

	query, err := queries.NewGetVehicleByRegistrationQuery("ABC123")
	suite.Require().NoError(err)

	summary, err := suite.getVehicle.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Equal("ABC123", summary.Registration)
	suite.Equal("30.30", summary.TotalIncome.String())
	suite.Equal("3.03", summary.TotalCost.String())
}

func (suite *QueriesIntegrationTestSuite) TestGetVehicleByRegistration_NotFound() {
	query, err := queries.NewGetVehicleByRegistrationQuery("NOPE1")
	suite.Require().NoError(err)

	_, err = suite.getVehicle.Handle(context.Background(), query)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestQueriesIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(QueriesIntegrationTestSuite))
}
