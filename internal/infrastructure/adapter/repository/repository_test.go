package repository

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/amirhossein-jamali/bitport/internal/infrastructure/adapter/database/dbtest"
	timeprovider "github.com/amirhossein-jamali/bitport/internal/infrastructure/adapter/time"
	coremocks "github.com/amirhossein-jamali/bitport/mocks/port/core"
	"github.com/stretchr/testify/mock"
)

var transactionColumns = []string{
	"id", "user_id", "from_currency", "to_currency", "amount", "price", "result_amount", "status", "created_at",
}

func quietLogger(t *testing.T) *coremocks.MockLogger {
	logger := coremocks.NewMockLogger(t)
	logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()
	return logger
}

func newTransactionRepo(t *testing.T) (*TransactionRepository, sqlmock.Sqlmock) {
	db, sqlMock := dbtest.NewMockDB(t)
	return NewTransactionRepository(db, nil, timeprovider.NewRealTimeProvider(), quietLogger(t), 5*time.Second), sqlMock
}

func newUserRepo(t *testing.T) (*UserRepository, sqlmock.Sqlmock) {
	db, sqlMock := dbtest.NewMockDB(t)
	return NewUserRepository(db, nil, timeprovider.NewRealTimeProvider(), quietLogger(t), 5*time.Second), sqlMock
}
