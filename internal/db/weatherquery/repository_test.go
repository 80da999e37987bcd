package weatherquery_test

import (
	"context"
	"database/sql"
	"errors"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"testing"
	"time"
	"ulascansenturk/home-weather-service/internal/db/weatherquery"
)

type WeatherRepositorySuite struct {
	suite.Suite
	DB   *gorm.DB
	mock sqlmock.Sqlmock
	repo weatherquery.Repository
	ctx  context.Context
}

func (s *WeatherRepositorySuite) SetupSuite() {
	var err error

	var db *sql.DB
	db, s.mock, err = sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	s.Require().NoError(err)

	dialector := postgres.New(postgres.Config{
		DSN:                  "sqlmock_db_0",
		DriverName:           "postgres",
		Conn:                 db,
		PreferSimpleProtocol: true,
	})

	s.DB, err = gorm.Open(dialector, &gorm.Config{})
	s.Require().NoError(err)

	s.repo = weatherquery.NewRepository(s.DB)
	s.ctx = context.Background()
}

func (s *WeatherRepositorySuite) TearDownTest() {
	s.Require().NoError(s.mock.ExpectationsWereMet())
}

func (s *WeatherRepositorySuite) TestLogWeatherQuery() {
	s.Run("Successfully logs a resolved activation", func() {
		query := &weatherquery.WeatherQuery{
			Latitude:    41.01,
			Longitude:   28.97,
			Place:       "Istanbul",
			Temperature: 18.6,
			WeatherCode: 2,
			Condition:   "Partly Cloudy",
		}

		s.mock.ExpectBegin()
		s.mock.ExpectQuery(`INSERT INTO "weather_queries"`).
			WithArgs(
				41.01,
				28.97,
				"Istanbul",
				18.6,
				2,
				"Partly Cloudy",
				sqlmock.AnyArg(),
			).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
		s.mock.ExpectCommit()

		err := s.repo.LogWeatherQuery(s.ctx, query)

		s.Require().NoError(err)
		s.Require().Equal(uint(1), query.ID)
		s.Require().False(query.CreatedAt.IsZero())
	})

	s.Run("Returns error when database operation fails", func() {
		query := &weatherquery.WeatherQuery{
			Latitude:    48.85,
			Longitude:   2.35,
			Temperature: 9,
			WeatherCode: 61,
			Condition:   "Light Rain",
		}
		dbError := errors.New("database error")

		s.mock.ExpectBegin()
		s.mock.ExpectQuery(`INSERT INTO "weather_queries"`).
			WithArgs(
				48.85,
				2.35,
				"",
				9.0,
				61,
				"Light Rain",
				sqlmock.AnyArg(),
			).
			WillReturnError(dbError)
		s.mock.ExpectRollback()

		err := s.repo.LogWeatherQuery(s.ctx, query)

		s.Require().Error(err)
		s.Require().Equal("database error", err.Error())
	})
}

func (s *WeatherRepositorySuite) TestGetRecentWeatherQueries() {
	queryRegex := `SELECT \* FROM "weather_queries" ORDER BY created_at DESC LIMIT \$1`

	s.Run("Successfully retrieves the most recent activations", func() {
		createdAt := time.Now()

		rows := sqlmock.NewRows([]string{
			"id", "latitude", "longitude", "place", "temperature", "weather_code", "condition", "created_at",
		}).
			AddRow(2, 51.5, -0.12, "London", 11.2, 3, "Cloudy", createdAt).
			AddRow(1, 52.52, 13.4, "Berlin", 7.5, 0, "Clear Sky", createdAt.Add(-time.Minute))

		s.mock.ExpectQuery(queryRegex).
			WithArgs(2).
			WillReturnRows(rows)

		result, err := s.repo.GetRecentWeatherQueries(s.ctx, 2)

		s.Require().NoError(err)
		s.Require().Len(result, 2)
		s.Require().Equal("London", result[0].Place)
		s.Require().Equal(11.2, result[0].Temperature)
		s.Require().Equal(3, result[0].WeatherCode)
		s.Require().Equal("Berlin", result[1].Place)
	})

	s.Run("Returns error when database query fails", func() {
		dbError := errors.New("connection error")

		s.mock.ExpectQuery(queryRegex).
			WithArgs(5).
			WillReturnError(dbError)

		result, err := s.repo.GetRecentWeatherQueries(s.ctx, 5)

		s.Require().Error(err)
		s.Require().Equal("connection error", err.Error())
		s.Require().Nil(result)
	})
}

func TestWeatherRepositorySuite(t *testing.T) {
	suite.Run(t, new(WeatherRepositorySuite))
}
