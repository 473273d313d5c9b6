package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/studentreg/internal/app/models"
	"github.com/yigit/studentreg/internal/app/models/dto"
	"github.com/yigit/studentreg/internal/pkg/apperrors"
	"github.com/yigit/studentreg/internal/pkg/auth"
	"golang.org/x/crypto/bcrypt"
)

func newStudentFixture(t *testing.T) (*memDB, StudentService) {
	t.Helper()
	db := newMemDB()
	svc := NewStudentService(db, memStudents{db}, memCourses{db}, memProfessors{db}, memEnrollments{db}, memUsers{db},
		NewStudentCodeGenerator(memStudents{db}), auth.NewBcryptHasher(bcrypt.MinCost), newMemCache(), zerolog.Nop())
	return db, svc
}

// enroll writes enrollments directly and refreshes the credit total
func enroll(t *testing.T, db *memDB, studentID int64, courseIDs ...int64) {
	t.Helper()
	ctx := context.Background()
	for _, id := range courseIDs {
		require.NoError(t, memEnrollments{db}.Create(ctx, &models.Enrollment{StudentID: studentID, CourseID: id, EnrolledAt: time.Now()}))
	}
	require.NoError(t, memStudents{db}.RecalculateTotalCredits(ctx, []int64{studentID}))
}

func strPtr(s string) *string { return &s }

func TestCreateStudent(t *testing.T) {
	db, svc := newStudentFixture(t)

	resp, err := svc.CreateStudent(context.Background(), dto.CreateStudentRequest{
		FirstName: " Alice ", LastName: "Smith", Email: "alice@school.edu",
	})
	require.NoError(t, err)

	assert.Equal(t, "Alice", resp.FirstName)
	assert.Regexp(t, `^STU\d{4}\d{4}$`, resp.StudentCode)
	assert.Equal(t, 0, resp.TotalCredits)
	assert.Empty(t, resp.Courses)
	assert.NotNil(t, resp.Courses)
	assert.Nil(t, resp.UserID)
	assert.Equal(t, 1, db.studentCount())
}

func TestCreateStudent_EmailTaken(t *testing.T) {
	db, svc := newStudentFixture(t)
	db.addStudent("Alice", "alice@school.edu")

	_, err := svc.CreateStudent(context.Background(), dto.CreateStudentRequest{
		FirstName: "Other", LastName: "Alice", Email: "alice@school.edu",
	})
	assert.ErrorIs(t, err, apperrors.ErrStudentEmailExists)
	assert.ErrorIs(t, err, apperrors.ErrConflict)
	assert.Equal(t, 1, db.studentCount())

	_, err = svc.CreateStudent(context.Background(), dto.CreateStudentRequest{
		FirstName: "Other", LastName: "Alice", Email: "ALICE@school.edu",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, db.studentCount())
}

func TestGetStudentByID_IncludesCoursesAndAccount(t *testing.T) {
	db, svc := newStudentFixture(t)
	ada := db.addProfessor("Ada", "Lovelace")
	algo := db.addCourse("Algorithms", 4, ada.ID)
	alice := db.addStudent("Alice", "alice@school.edu")
	enroll(t, db, alice.ID, algo.ID)
	_, err := memUsers{db}.Create(context.Background(), &models.User{
		Username: "alice", Email: "alice@school.edu", Role: models.RoleStudent, IsActive: true, StudentID: &alice.ID,
	})
	require.NoError(t, err)

	resp, err := svc.GetStudentByID(context.Background(), alice.ID)
	require.NoError(t, err)

	assert.Equal(t, 4, resp.TotalCredits)
	require.Len(t, resp.Courses, 1)
	assert.Equal(t, "Algorithms", resp.Courses[0].Name)
	assert.Equal(t, "Ada Lovelace", resp.Courses[0].ProfessorName)
	require.NotNil(t, resp.UserID)
	assert.Equal(t, "alice", resp.Username)

	_, err = svc.GetStudentByID(context.Background(), 9999)
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}

func TestGetAllStudents(t *testing.T) {
	db, svc := newStudentFixture(t)
	db.addStudent("Alice", "alice@school.edu")
	db.addStudent("Bob", "bob@school.edu")

	all, err := svc.GetAllStudents(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Alice", all[0].FirstName)
	assert.Equal(t, "Bob", all[1].FirstName)
}

func TestUpdateStudent_UpdatesLinkedAccount(t *testing.T) {
	db, svc := newStudentFixture(t)
	ctx := context.Background()
	alice := db.addStudent("Alice", "alice@school.edu")
	userID, err := memUsers{db}.Create(ctx, &models.User{
		Username: "alice", Email: "alice@school.edu", PasswordHash: "old", Role: models.RoleStudent, IsActive: true, StudentID: &alice.ID,
	})
	require.NoError(t, err)

	resp, err := svc.UpdateStudent(ctx, alice.ID, dto.UpdateStudentRequest{
		FirstName:   "Alicia",
		LastName:    "Smith",
		Email:       "alicia@school.edu",
		Username:    strPtr("alicia"),
		NewPassword: strPtr("s3cret!"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Alicia", resp.FirstName)
	assert.Equal(t, "alicia@school.edu", resp.Email)
	assert.Equal(t, "alicia", resp.Username)

	user, err := memUsers{db}.GetByID(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, "alicia", user.Username)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("s3cret!")))
}

func TestUpdateStudent_WithoutAccount(t *testing.T) {
	db, svc := newStudentFixture(t)
	alice := db.addStudent("Alice", "alice@school.edu")

	resp, err := svc.UpdateStudent(context.Background(), alice.ID, dto.UpdateStudentRequest{
		FirstName: "Alice", LastName: "Jones", Email: "alice@school.edu", Username: strPtr("ignored"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Jones", resp.LastName)
	assert.Nil(t, resp.UserID)
}

func TestUpdateStudent_EmailTakenByAnother(t *testing.T) {
	db, svc := newStudentFixture(t)
	alice := db.addStudent("Alice", "alice@school.edu")
	db.addStudent("Bob", "bob@school.edu")

	_, err := svc.UpdateStudent(context.Background(), alice.ID, dto.UpdateStudentRequest{
		FirstName: "Alice", LastName: "Test", Email: "bob@school.edu",
	})
	assert.ErrorIs(t, err, apperrors.ErrStudentEmailExists)
	assert.Equal(t, "alice@school.edu", db.student(alice.ID).Email)
}

func TestUpdateStudent_UsernameTakenRollsBack(t *testing.T) {
	db, svc := newStudentFixture(t)
	ctx := context.Background()
	alice := db.addStudent("Alice", "alice@school.edu")
	_, err := memUsers{db}.Create(ctx, &models.User{Username: "alice", Email: "alice@school.edu", IsActive: true, StudentID: &alice.ID})
	require.NoError(t, err)
	_, err = memUsers{db}.Create(ctx, &models.User{Username: "bob", Email: "bob@school.edu", IsActive: true})
	require.NoError(t, err)

	_, err = svc.UpdateStudent(ctx, alice.ID, dto.UpdateStudentRequest{
		FirstName: "Renamed", LastName: "Test", Email: "alice@school.edu", Username: strPtr("bob"),
	})
	assert.ErrorIs(t, err, apperrors.ErrUserExists)
	assert.Equal(t, "Alice", db.student(alice.ID).FirstName)
}

func TestUpdateStudent_PasswordFailureRollsBack(t *testing.T) {
	db, svc := newStudentFixture(t)
	ctx := context.Background()
	alice := db.addStudent("Alice", "alice@school.edu")
	_, err := memUsers{db}.Create(ctx, &models.User{Username: "alice", Email: "alice@school.edu", IsActive: true, StudentID: &alice.ID})
	require.NoError(t, err)
	db.failures["users.UpdatePassword"] = errors.New("write failed")

	_, err = svc.UpdateStudent(ctx, alice.ID, dto.UpdateStudentRequest{
		FirstName: "Renamed", LastName: "Test", Email: "alice@school.edu", NewPassword: strPtr("another1"),
	})
	assert.EqualError(t, err, "write failed")
	assert.Equal(t, "Alice", db.student(alice.ID).FirstName)
}

func TestUpdateStudent_NotFound(t *testing.T) {
	_, svc := newStudentFixture(t)

	_, err := svc.UpdateStudent(context.Background(), 42, dto.UpdateStudentRequest{
		FirstName: "A", LastName: "B", Email: "a@b.c",
	})
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}

func TestDeleteStudent(t *testing.T) {
	db, svc := newStudentFixture(t)
	ada := db.addProfessor("Ada", "Lovelace")
	algo := db.addCourse("Algorithms", 3, ada.ID)
	alice := db.addStudent("Alice", "alice@school.edu")
	enroll(t, db, alice.ID, algo.ID)

	require.NoError(t, svc.DeleteStudent(context.Background(), alice.ID))
	assert.Equal(t, 0, db.studentCount())
	assert.Empty(t, db.enrolledCourseIDs(alice.ID))

	assert.ErrorIs(t, svc.DeleteStudent(context.Background(), alice.ID), apperrors.ErrStudentNotFound)
}

func TestGetStudentsByProfessor(t *testing.T) {
	db, svc := newStudentFixture(t)
	ada := db.addProfessor("Ada", "Lovelace")
	alan := db.addProfessor("Alan", "Turing")
	algo := db.addCourse("Algorithms", 3, ada.ID)
	comp := db.addCourse("Computability", 3, alan.ID)
	alice := db.addStudent("Alice", "alice@school.edu")
	bob := db.addStudent("Bob", "bob@school.edu")
	enroll(t, db, alice.ID, algo.ID)
	enroll(t, db, bob.ID, comp.ID)

	students, err := svc.GetStudentsByProfessor(context.Background(), ada.ID)
	require.NoError(t, err)
	require.Len(t, students, 1)
	assert.Equal(t, alice.ID, students[0].ID)
}

func TestGetClassmates(t *testing.T) {
	db, svc := newStudentFixture(t)
	ctx := context.Background()
	ada := db.addProfessor("Ada", "Lovelace")
	algo := db.addCourse("Algorithms", 3, ada.ID)
	other := db.addCourse("Compilers", 3, ada.ID)
	alice := db.addStudent("Alice", "alice@school.edu")
	bob := db.addStudent("Bob", "bob@school.edu")
	carol := db.addStudent("Carol", "carol@school.edu")
	enroll(t, db, alice.ID, algo.ID)
	enroll(t, db, bob.ID, algo.ID)
	enroll(t, db, carol.ID, other.ID)

	mates, err := svc.GetClassmates(ctx, alice.ID, algo.ID)
	require.NoError(t, err)
	assert.Equal(t, []dto.Classmate{{ID: bob.ID, FirstName: "Bob", LastName: "Test"}}, mates)

	_, err = svc.GetClassmates(ctx, alice.ID, other.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotEnrolled)

	_, err = svc.GetClassmates(ctx, 9999, algo.ID)
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}

func TestGetAllClassmates(t *testing.T) {
	db, svc := newStudentFixture(t)
	ada := db.addProfessor("Ada", "Lovelace")
	alan := db.addProfessor("Alan", "Turing")
	algo := db.addCourse("Algorithms", 3, ada.ID)
	comp := db.addCourse("Computability", 3, alan.ID)
	alice := db.addStudent("Alice", "alice@school.edu")
	bob := db.addStudent("Bob", "bob@school.edu")
	enroll(t, db, alice.ID, algo.ID, comp.ID)
	enroll(t, db, bob.ID, comp.ID)

	groups, err := svc.GetAllClassmates(context.Background(), alice.ID)
	require.NoError(t, err)
	require.Len(t, groups, 2)

	assert.Equal(t, algo.ID, groups[0].CourseID)
	assert.Equal(t, "Ada Lovelace", groups[0].ProfessorName)
	assert.Empty(t, groups[0].Classmates)

	assert.Equal(t, comp.ID, groups[1].CourseID)
	require.Len(t, groups[1].Classmates, 1)
	assert.Equal(t, bob.ID, groups[1].Classmates[0].ID)
}
