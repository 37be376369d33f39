package repository

import (
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)
	return db, mock
}

// 互动计数器必须走数据库侧的原子递增，不能读回结构体再 Save 造成并发丢更新
func TestIncrCommentsAtomicUpdate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPortfolioRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("SET `comments`=comments + 1")).
		WithArgs("item-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.IncrComments("item-1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIncrBookmarksAtomicUpdate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPortfolioRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("SET `bookmarks`=bookmarks + 1")).
		WithArgs("item-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.IncrBookmarks("item-1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
