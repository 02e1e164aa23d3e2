package repository

import (
	"context"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kamaru-dev/gpcal-api/internal/models"
)

func TestCourseRepositoryListBySemester(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewCourseRepository(db)

	rows := sqlmock.NewRows([]string{"id", "semester_id", "name", "credit_unit", "grade_point", "created_at"}).
		AddRow("c1", "s1", "Algorithms", 3, "A", time.Now()).
		AddRow("c2", "s1", "Databases", nil, nil, time.Now())
	mock.ExpectQuery("SELECT id, semester_id, name, credit_unit, grade_point, created_at FROM courses WHERE semester_id").
		WithArgs("s1").
		WillReturnRows(rows)

	courses, err := repo.ListBySemester(context.Background(), "s1")
	require.NoError(t, err)
	require.Len(t, courses, 2)
	assert.True(t, courses[0].Qualifies())
	assert.False(t, courses[1].Qualifies())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCourseRepositoryCreateAssignsID(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewCourseRepository(db)

	mock.ExpectExec("INSERT INTO courses").
		WillReturnResult(sqlmock.NewResult(0, 1))

	course := &models.Course{SemesterID: "s1", Name: "Algorithms"}
	require.NoError(t, repo.Create(context.Background(), course))
	assert.NotEmpty(t, course.ID)
	assert.False(t, course.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCourseRepositoryDelete(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewCourseRepository(db)

	mock.ExpectExec("DELETE FROM courses WHERE id").
		WithArgs("c1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), "c1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
