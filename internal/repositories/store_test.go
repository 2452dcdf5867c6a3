package repositories_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"skillsphere/internal/models/db_models"
	"skillsphere/internal/repositories"
	"skillsphere/internal/services"
	"skillsphere/pkg/utils"
)

func newMockStore(t *testing.T) (repositories.Store, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Discard,
	})
	require.NoError(t, err)
	return repositories.NewStore(db), mock
}

var owner = &services.Principal{ID: 1, DisplayName: "alice", Source: services.SourceUser}

func expectPostLocked(mock sqlmock.Sqlmock) {
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "posts" WHERE id = \$1 .*FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "owner_id", "title"}).AddRow(7, 1, "title"))
}

func TestDeletePost_CommitsCascade(t *testing.T) {
	store, mock := newMockStore(t)
	content := services.NewContentService(store, zap.NewNop())

	expectPostLocked(mock)
	mock.ExpectExec(`DELETE FROM "reactions" WHERE post_id = \$1`).
		WithArgs(7).WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(`DELETE FROM "comments" WHERE post_id = \$1`).
		WithArgs(7).WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`DELETE FROM "posts" WHERE id = \$1`).
		WithArgs(7).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, content.DeletePost(context.Background(), 7, owner))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeletePost_RollsBackOnFailure(t *testing.T) {
	store, mock := newMockStore(t)
	content := services.NewContentService(store, zap.NewNop())

	expectPostLocked(mock)
	mock.ExpectExec(`DELETE FROM "reactions" WHERE post_id = \$1`).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(`DELETE FROM "comments" WHERE post_id = \$1`).
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	err := content.DeletePost(context.Background(), 7, owner)
	assert.ErrorIs(t, err, utils.ErrDatabaseError)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeletePost_ForbiddenRollsBack(t *testing.T) {
	store, mock := newMockStore(t)
	content := services.NewContentService(store, zap.NewNop())

	expectPostLocked(mock)
	mock.ExpectRollback()

	stranger := &services.Principal{ID: 2, Source: services.SourceUser}
	err := content.DeletePost(context.Background(), 7, stranger)
	assert.ErrorIs(t, err, utils.ErrForbidden)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateComment_LocksPostBeforeEditing(t *testing.T) {
	store, mock := newMockStore(t)
	content := services.NewContentService(store, zap.NewNop())

	expectPostLocked(mock)
	mock.ExpectQuery(`SELECT \* FROM "comments" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "post_id", "author_id", "text"}).AddRow(9, 7, 1, "old"))
	mock.ExpectExec(`UPDATE "comments" SET .*"text"=\$\d.* WHERE id = \$\d`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	comment, err := content.UpdateComment(context.Background(), 7, 9, owner, "new")
	require.NoError(t, err)
	assert.Equal(t, "new", comment.Text)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateComment_MissingPostRollsBack(t *testing.T) {
	store, mock := newMockStore(t)
	content := services.NewContentService(store, zap.NewNop())

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "posts" WHERE id = \$1 .*FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	_, err := content.UpdateComment(context.Background(), 7, 9, owner, "new")
	assert.ErrorIs(t, err, utils.ErrPostNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteSubscriptionPlan_InUse(t *testing.T) {
	store, mock := newMockStore(t)
	content := services.NewContentService(store, zap.NewNop())

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "subscription_plans" WHERE id = \$1 .*FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(3, "Pro"))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "subscriptions" WHERE plan_name = \$1`).
		WithArgs("Pro").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectRollback()

	err := content.DeleteSubscriptionPlan(context.Background(), 3)
	assert.ErrorIs(t, err, utils.ErrPlanInUse)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindById_NotFoundIsNil(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(`SELECT \* FROM "notes" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	note, err := store.Notes().FindById(context.Background(), 42)
	require.NoError(t, err)
	assert.Nil(t, note)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_DuplicateKeyIsTranslated(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "reactions"`).
		WillReturnError(gorm.ErrDuplicatedKey)
	mock.ExpectRollback()

	err := store.Reactions().Create(context.Background(), &db_models.Reaction{PostID: 1, UserID: 1, Type: db_models.ReactionLike})
	assert.ErrorIs(t, err, repositories.ErrDuplicateKey)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestPostgres_DeletePostCascade runs against a real database when
// TEST_POSTGRES_DSN is set.
func TestPostgres_DeletePostCascade(t *testing.T) {
	dsn := os.Getenv("TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("TEST_POSTGRES_DSN not set")
	}
	ctx := context.Background()

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true, Logger: logger.Discard})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&db_models.Post{}, &db_models.Comment{}, &db_models.Reaction{}))
	store := repositories.NewStore(db)

	post := &db_models.Post{OwnerID: owner.ID, Title: "integration"}
	require.NoError(t, store.Posts().Create(ctx, post))
	require.NoError(t, store.Comments().Create(ctx, &db_models.Comment{PostID: post.ID, AuthorID: 2, Text: "hi"}))
	require.NoError(t, store.Reactions().Create(ctx, &db_models.Reaction{PostID: post.ID, UserID: 2, Type: db_models.ReactionWow}))

	content := services.NewContentService(store, zap.NewNop())
	require.NoError(t, content.DeletePost(ctx, post.ID, owner))

	comments, err := store.Comments().ListByPost(ctx, post.ID)
	require.NoError(t, err)
	assert.Empty(t, comments)
	reactions, err := store.Reactions().ListByPost(ctx, post.ID)
	require.NoError(t, err)
	assert.Empty(t, reactions)
}
