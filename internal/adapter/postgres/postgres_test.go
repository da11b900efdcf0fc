package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"caltrack/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMock(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock database: %v", err)
	}
	t.Cleanup(func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unfulfilled expectations: %v", err)
		}
		_ = db.Close()
	})
	return New(db), mock
}

func TestMigrate(t *testing.T) {
	d, mock := setupMock(t)
	for i := 0; i < 6; i++ {
		mock.ExpectExec("CREATE").WillReturnResult(sqlmock.NewResult(0, 0))
	}
	require.NoError(t, d.migrate(context.Background()))
}

func TestMigrate_Error(t *testing.T) {
	d, mock := setupMock(t)
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS users").WillReturnError(errors.New("permission denied"))
	err := d.migrate(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "migrate")
}

func TestCreateUser(t *testing.T) {
	d, mock := setupMock(t)
	u := domain.User{ID: "u1", Username: "alice", PasswordHash: "h", CreatedAt: time.Now()}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users (id, username, password_hash, created_at) VALUES ($1, $2, $3, $4)")).
		WithArgs("u1", "alice", "h", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, d.Create(context.Background(), u))
}

func TestCreateUser_Duplicate(t *testing.T) {
	d, mock := setupMock(t)
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users")).
		WillReturnError(&pq.Error{Code: codeUniqueViolation})

	err := d.Create(context.Background(), domain.User{ID: "u2", Username: "alice"})
	assert.ErrorIs(t, err, domain.ErrDuplicateUsername)
}

func TestCreateUser_OtherError(t *testing.T) {
	d, mock := setupMock(t)
	wantErr := errors.New("connection reset")
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users")).WillReturnError(wantErr)

	err := d.Create(context.Background(), domain.User{ID: "u2", Username: "alice"})
	assert.ErrorIs(t, err, wantErr)
}

func TestGetByUsername(t *testing.T) {
	d, mock := setupMock(t)
	created := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, username, password_hash, created_at FROM users WHERE username = $1")).
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password_hash", "created_at"}).
			AddRow("u1", "alice", "h", created))

	u, err := d.GetByUsername(context.Background(), "alice")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "u1", u.ID)
	assert.Equal(t, created, u.CreatedAt)
}

func TestGetByID_NotFound(t *testing.T) {
	d, mock := setupMock(t)
	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE id = $1")).
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password_hash", "created_at"}))

	u, err := d.GetByID(context.Background(), "ghost")
	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestSeedFoods(t *testing.T) {
	d, mock := setupMock(t)
	foods := []domain.FoodItem{
		{ID: "rice", Name: "Rice, cooked", Calories: 130, Protein: 2.7, Fat: 0.3, Carbs: 28},
		{ID: "roti", Name: "Roti", Calories: 100, Protein: 3, Fat: 1.5, Carbs: 20},
	}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM foods")).WillReturnResult(sqlmock.NewResult(0, 3))
	for i, f := range foods {
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO foods")).
			WithArgs(f.ID, i, f.Name, f.Calories, f.Protein, f.Fat, f.Carbs).
			WillReturnResult(sqlmock.NewResult(1, 1))
	}
	mock.ExpectCommit()

	require.NoError(t, d.SeedFoods(context.Background(), foods))
}

func TestSeedFoods_RollsBackOnError(t *testing.T) {
	d, mock := setupMock(t)
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM foods")).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO foods")).WillReturnError(errors.New("boom"))
	mock.ExpectRollback()

	err := d.SeedFoods(context.Background(), []domain.FoodItem{{ID: "x", Name: "X", Calories: 1}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "x")
}

func TestListFoods(t *testing.T) {
	d, mock := setupMock(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, calories, protein, fat, carbs FROM foods ORDER BY position")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "calories", "protein", "fat", "carbs"}).
			AddRow("rice", "Rice, cooked", 130.0, 2.7, 0.3, 28.0).
			AddRow("roti", "Roti", 100.0, 3.0, 1.5, 20.0))

	foods, err := d.ListFoods(context.Background())
	require.NoError(t, err)
	require.Len(t, foods, 2)
	assert.Equal(t, "roti", foods[1].ID)
	assert.Equal(t, 1.5, foods[1].Fat)
}

func TestGetFood_NotFound(t *testing.T) {
	d, mock := setupMock(t)
	mock.ExpectQuery(regexp.QuoteMeta("FROM foods WHERE id = $1")).
		WithArgs("pizza").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "calories", "protein", "fat", "carbs"}))

	f, err := d.GetFood(context.Background(), "pizza")
	require.NoError(t, err)
	assert.Nil(t, f)
}

func TestAddMeal(t *testing.T) {
	tests := []struct {
		name       string
		foodID     string
		wantFoodID any
	}{
		{"with food id", "roti", "roti"},
		{"without food id", "", nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d, mock := setupMock(t)
			mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO meals (user_id, food_id, name, calories, protein, fat, carbs, logged_at)")).
				WithArgs("u1", tc.wantFoodID, "Roti", 100.0, 3.0, 1.5, 20.0, sqlmock.AnyArg()).
				WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(9)))

			id, err := d.AddMeal(context.Background(), domain.MealEntry{
				UserID: "u1", FoodID: tc.foodID, Name: "Roti", Calories: 100, Protein: 3, Fat: 1.5, Carbs: 20, LoggedAt: time.Now(),
			})
			require.NoError(t, err)
			assert.Equal(t, int64(9), id)
		})
	}
}

func TestAddMeal_ForeignKeyViolation(t *testing.T) {
	d, mock := setupMock(t)
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO meals")).
		WillReturnError(&pq.Error{Code: codeForeignKeyViolation})

	_, err := d.AddMeal(context.Background(), domain.MealEntry{UserID: "ghost", Name: "x", Calories: 1})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestListMealsByUser(t *testing.T) {
	d, mock := setupMock(t)
	at := time.Date(2026, 2, 8, 7, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("FROM meals WHERE user_id = $1 ORDER BY id;")).
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "food_id", "name", "calories", "protein", "fat", "carbs", "logged_at"}).
			AddRow(int64(1), "roti", "Roti", 100.0, 3.0, 1.5, 20.0, at).
			AddRow(int64(2), nil, "Apple", 95.0, 0.5, 0.3, 25.0, at))

	meals, err := d.ListMealsByUser(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, meals, 2)
	assert.Equal(t, "roti", meals[0].FoodID)
	assert.Equal(t, "", meals[1].FoodID)
	assert.Equal(t, "u1", meals[1].UserID)
}

func TestListMealsByUser_Empty(t *testing.T) {
	d, mock := setupMock(t)
	mock.ExpectQuery(regexp.QuoteMeta("FROM meals WHERE user_id = $1")).
		WithArgs("nobody").
		WillReturnRows(sqlmock.NewRows([]string{"id", "food_id", "name", "calories", "protein", "fat", "carbs", "logged_at"}))

	meals, err := d.ListMealsByUser(context.Background(), "nobody")
	require.NoError(t, err)
	assert.NotNil(t, meals)
	assert.Empty(t, meals)
}

func TestAddWorkout(t *testing.T) {
	d, mock := setupMock(t)
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO workouts (user_id, activity, duration_minutes, calories_burned, logged_at)")).
		WithArgs("u1", "run", 30.0, 250.0, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(3)))

	id, err := d.AddWorkout(context.Background(), domain.WorkoutEntry{
		UserID: "u1", Activity: "run", DurationMinutes: 30, CaloriesBurned: 250, LoggedAt: time.Now(),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), id)
}

func TestAddWorkout_ForeignKeyViolation(t *testing.T) {
	d, mock := setupMock(t)
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO workouts")).
		WillReturnError(&pq.Error{Code: codeForeignKeyViolation})

	_, err := d.AddWorkout(context.Background(), domain.WorkoutEntry{UserID: "ghost", DurationMinutes: 1})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestListWorkoutsByUser(t *testing.T) {
	d, mock := setupMock(t)
	at := time.Date(2026, 2, 8, 7, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("FROM workouts WHERE user_id = $1 ORDER BY id;")).
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "activity", "duration_minutes", "calories_burned", "logged_at"}).
			AddRow(int64(1), "run", 30.0, 250.0, at))

	ws, err := d.ListWorkoutsByUser(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, ws, 1)
	assert.Equal(t, 250.0, ws[0].CaloriesBurned)
	assert.Equal(t, at, ws[0].LoggedAt)
}
