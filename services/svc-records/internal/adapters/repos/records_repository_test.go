package repos_test

import (
	"bytes"
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/architeacher/filtersort/pkg/logger"
	"github.com/architeacher/filtersort/services/svc-records/internal/adapters/repos"
	"github.com/architeacher/filtersort/services/svc-records/internal/domain/model"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/require"
)

func runRecordsRepoTest(
	t *testing.T,
	maxRows uint64,
	setupMock func(pgxmock.PgxPoolIface),
	testFn func(*testing.T, *repos.RecordsRepository, *bytes.Buffer),
) {
	t.Helper()
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	setupMock(mock)

	logBuffer := &bytes.Buffer{}
	log := logger.NewBufferedTestLogger(logBuffer)
	repo := repos.NewRecordsRepository(mock, repos.NewPgxScanner(), repos.NewCriteriaTranslator(&log), log, maxRows)
	testFn(t, repo, logBuffer)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordsRepository_List(t *testing.T) {
	t.Parallel()

	entity := model.Entity{Name: "users", Table: "app.users"}

	cases := []struct {
		name        string
		maxRows     uint64
		criteria    model.Criteria
		setupMock   func(mock pgxmock.PgxPoolIface)
		expected    []model.Record
		expectedErr error
	}{
		{
			name:    "filters sorts and caps the listing",
			maxRows: 50,
			criteria: model.NewCriteria().
				WhereEquals("status", "active").
				WhereLike("name", "%an%").
				OrderBy("name", model.SortDesc).
				Build(),
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(regexp.QuoteMeta(
					`SELECT * FROM "app"."users" WHERE ("status" = $1 AND "name"::text LIKE $2) ORDER BY "name" DESC LIMIT 50`,
				)).
					WithArgs("active", "%an%").
					WillReturnRows(
						pgxmock.NewRows([]string{"id", "name", "status"}).
							AddRow(int64(2), "Dana", "active").
							AddRow(int64(1), "Ann", "active"),
					)
			},
			expected: []model.Record{
				{"id": int64(2), "name": "Dana", "status": "active"},
				{"id": int64(1), "name": "Ann", "status": "active"},
			},
		},
		{
			name:     "zero cap lists without limit",
			criteria: model.NewCriteria().Build(),
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "app"."users"`)).
					WillReturnRows(pgxmock.NewRows([]string{"id"}))
			},
			expected: []model.Record{},
		},
		{
			name:     "statement rejected by the server is a database query error",
			maxRows:  10,
			criteria: model.NewCriteria().WhereNull("deleted_at").Build(),
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(regexp.QuoteMeta(
					`SELECT * FROM "app"."users" WHERE "deleted_at" IS NULL LIMIT 10`,
				)).
					WillReturnError(&pgconn.PgError{Code: "42P01", Message: `relation "app.users" does not exist`})
			},
			expectedErr: model.ErrDatabaseQuery,
		},
		{
			name:     "unreachable database is a connection error",
			maxRows:  10,
			criteria: model.NewCriteria().WhereNull("deleted_at").Build(),
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(regexp.QuoteMeta(
					`SELECT * FROM "app"."users" WHERE "deleted_at" IS NULL LIMIT 10`,
				)).
					WillReturnError(errors.New("dial tcp 10.0.0.5:5432: connect: connection refused"))
			},
			expectedErr: model.ErrDatabaseConnection,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			runRecordsRepoTest(t, tc.maxRows, tc.setupMock, func(t *testing.T, repo *repos.RecordsRepository, logBuffer *bytes.Buffer) {
				records, err := repo.List(context.Background(), entity, tc.criteria)

				if tc.expectedErr != nil {
					require.ErrorIs(t, err, tc.expectedErr)

					return
				}

				require.NoError(t, err)
				require.Equal(t, tc.expected, records)
				require.Contains(t, logBuffer.String(), "listing records")
			})
		})
	}
}

func TestRecordsRepository_Ping(t *testing.T) {
	runRecordsRepoTest(t, 0, func(mock pgxmock.PgxPoolIface) {
		mock.ExpectPing().WillReturnError(errors.New("down"))
	}, func(t *testing.T, repo *repos.RecordsRepository, _ *bytes.Buffer) {
		require.Error(t, repo.Ping(context.Background()))
	})
}
