package checks

import (
	"context"
	"errors"
	"testing"

	"impl-tracker/core/storage/mocks"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func objects(keys ...string) <-chan minio.ObjectInfo {
	ch := make(chan minio.ObjectInfo, len(keys))
	for _, key := range keys {
		ch <- minio.ObjectInfo{Key: key}
	}
	close(ch)
	return ch
}

func withPrefix(prefix string) interface{} {
	return mock.MatchedBy(func(opts minio.ListObjectsOptions) bool { return opts.Prefix == prefix })
}

func TestCheckStructure(t *testing.T) {
	t.Run("Bucket Missing", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "assets").Return(false, nil)

		_, err := CheckStructure(context.Background(), mockClient, "assets")
		assert.ErrorContains(t, err, "does not exist")
	})

	t.Run("All Missing", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "assets").Return(true, nil)
		mockClient.On("ListObjects", mock.Anything, "assets", mock.Anything).Return(nil)

		missing, err := CheckStructure(context.Background(), mockClient, "assets")
		assert.NoError(t, err)
		assert.Equal(t, RequiredFolders(), missing)
		assert.Contains(t, missing, "snapshots/npc")
	})

	t.Run("All Present", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "assets").Return(true, nil)
		for _, folder := range RequiredFolders() {
			mockClient.On("ListObjects", mock.Anything, "assets", withPrefix(folder+"/")).
				Return(objects(folder + "/"))
		}

		missing, err := CheckStructure(context.Background(), mockClient, "assets")
		assert.NoError(t, err)
		assert.Empty(t, missing)
	})

	t.Run("Bucket Error", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "assets").Return(false, errors.New("denied"))

		_, err := CheckStructure(context.Background(), mockClient, "assets")
		assert.ErrorContains(t, err, "denied")
	})
}

func TestFixStructure(t *testing.T) {
	mockClient := new(mocks.Client)
	mockClient.On("PutObject", mock.Anything, "assets", "snapshots/quest/", mock.Anything, int64(0), mock.Anything).
		Return(minio.UploadInfo{}, nil)

	err := FixStructure(context.Background(), mockClient, "assets", zap.NewNop(), []string{"snapshots/quest"})
	assert.NoError(t, err)
	mockClient.AssertExpectations(t)
}

func TestCheckDocuments(t *testing.T) {
	t.Run("Nil DB", func(t *testing.T) {
		_, err := CheckDocuments(nil)
		assert.Error(t, err)
	})

	t.Run("Matched", func(t *testing.T) {
		db, sqlMock := setupMockDB(t)
		rows := sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"}).
			AddRow("kind", "varchar(32)", "NO", "PRI", nil, "").
			AddRow("id", "varchar(64)", "NO", "PRI", nil, "").
			AddRow("name", "varchar(255)", "YES", "", nil, "").
			AddRow("payload", "longblob", "YES", "", nil, "").
			AddRow("updated_at", "datetime(3)", "YES", "", nil, "")
		sqlMock.ExpectQuery("SHOW COLUMNS FROM `documents`").WillReturnRows(rows)

		report, err := CheckDocuments(db)
		require.NoError(t, err)
		assert.True(t, report.Matched)
		assert.Empty(t, report.MissingColumns)
	})

	t.Run("Missing Columns", func(t *testing.T) {
		db, sqlMock := setupMockDB(t)
		rows := sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"}).
			AddRow("kind", "varchar(32)", "NO", "PRI", nil, "").
			AddRow("id", "varchar(64)", "NO", "PRI", nil, "")
		sqlMock.ExpectQuery("SHOW COLUMNS FROM `documents`").WillReturnRows(rows)

		report, err := CheckDocuments(db)
		require.NoError(t, err)
		assert.False(t, report.Matched)
		assert.Equal(t, []string{"name", "payload", "updated_at"}, report.MissingColumns)
	})
}

func TestExpectedDocumentColumns(t *testing.T) {
	db, _ := setupMockDB(t)

	columns, err := ExpectedDocumentColumns(db)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"kind", "id", "name", "payload", "updated_at"}, columns)
}

func TestOrphanedSnapshots(t *testing.T) {
	db, sqlMock := setupMockDB(t)
	mockClient := new(mocks.Client)

	mockClient.On("ListObjects", mock.Anything, "assets", withPrefix("snapshots/npc/")).
		Return(objects("snapshots/npc/n1.json", "snapshots/npc/n2.json", "snapshots/npc/"))
	mockClient.On("ListObjects", mock.Anything, "assets", mock.Anything).Return(nil)

	sqlMock.ExpectQuery("SELECT `id` FROM `documents` WHERE kind = \\? AND id IN \\(\\?,\\?\\)").
		WithArgs("npc", "n1", "n2").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("n1"))

	orphans, err := OrphanedSnapshots(context.Background(), mockClient, "assets", db)
	require.NoError(t, err)
	assert.Equal(t, []string{"snapshots/npc/n2.json"}, orphans)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestOrphanedSnapshots_ListErrorCancelsListing(t *testing.T) {
	db, _ := setupMockDB(t)
	mockClient := new(mocks.Client)

	ch := make(chan minio.ObjectInfo, 1)
	ch <- minio.ObjectInfo{Err: errors.New("access denied")}
	close(ch)

	var listCtx context.Context
	mockClient.On("ListObjects", mock.Anything, "assets", withPrefix("snapshots/npc/")).
		Run(func(args mock.Arguments) { listCtx = args.Get(0).(context.Context) }).
		Return((<-chan minio.ObjectInfo)(ch))

	_, err := OrphanedSnapshots(context.Background(), mockClient, "assets", db)
	assert.ErrorContains(t, err, "access denied")
	require.NotNil(t, listCtx)
	assert.ErrorIs(t, listCtx.Err(), context.Canceled)
}

func TestCheckStructure_CancelsListing(t *testing.T) {
	mockClient := new(mocks.Client)
	mockClient.On("BucketExists", mock.Anything, "assets").Return(true, nil)

	var contexts []context.Context
	mockClient.On("ListObjects", mock.Anything, "assets", mock.Anything).
		Run(func(args mock.Arguments) { contexts = append(contexts, args.Get(0).(context.Context)) }).
		Return(objects(RequiredFolders()...))

	missing, err := CheckStructure(context.Background(), mockClient, "assets")
	require.NoError(t, err)
	assert.Empty(t, missing)
	require.Len(t, contexts, len(RequiredFolders()))
	for _, ctx := range contexts {
		assert.ErrorIs(t, ctx.Err(), context.Canceled)
	}
}
