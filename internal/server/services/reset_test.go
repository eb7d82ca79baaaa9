package services

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/authkeeper/internal/common"
	"github.com/dmitrijs2005/authkeeper/internal/server/repositories/repomanager"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requestToken(t *testing.T, env *testEnv, email string) string {
	t.Helper()
	require.NoError(t, env.reset.RequestReset(context.Background(), email))
	return tokenFromMessage(t, env.queue.last(t))
}

func TestRequestReset_UnknownEmailLooksLikeSuccess(t *testing.T) {
	env := newTestEnv(t)

	assert.NoError(t, env.reset.RequestReset(context.Background(), "nobody@x.com"))
	assert.Empty(t, env.queue.all())
}

func TestResetLifecycle(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	signed := env.signup(t, "alice", "a@x.com", "secret123")

	token := requestToken(t, env, "A@X.com")
	assert.Len(t, token, 64, "256-bit hex token")

	stored, err := env.store.Accounts().GetByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, digestToken(token), stored.ResetTokenHash)
	assert.NotEqual(t, token, stored.ResetTokenHash)
	require.NotNil(t, stored.ResetTokenExpiry)
	assert.Equal(t, testStart.Add(time.Hour), *stored.ResetTokenExpiry)

	acc, err := env.reset.ValidateToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, signed.Account.ID, acc.ID)
	assert.Empty(t, acc.ResetTokenHash)

	// Validation does not consume.
	_, err = env.reset.ValidateToken(ctx, token)
	require.NoError(t, err)

	require.NoError(t, env.reset.ResetPassword(ctx, token, "newpass"))

	err = env.reset.ResetPassword(ctx, token, "newpass2")
	assert.ErrorIs(t, err, common.ErrInvalidOrExpiredToken)
	_, err = env.reset.ValidateToken(ctx, token)
	assert.ErrorIs(t, err, common.ErrInvalidOrExpiredToken)

	_, err = env.identity.Login(ctx, "a@x.com", "secret123")
	assert.ErrorIs(t, err, common.ErrInvalidCredentials)
	_, err = env.identity.Login(ctx, "a@x.com", "newpass")
	assert.NoError(t, err)

	stored, err = env.store.Accounts().GetByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Empty(t, stored.ResetTokenHash)
	assert.Nil(t, stored.ResetTokenExpiry)
}

func TestResetPassword_ExpiresAfterAnHour(t *testing.T) {
	env := newTestEnv(t)
	env.signup(t, "alice", "a@x.com", "secret123")
	token := requestToken(t, env, "a@x.com")

	env.clock.Advance(61 * time.Minute)

	err := env.reset.ResetPassword(context.Background(), token, "newpass")
	assert.ErrorIs(t, err, common.ErrInvalidOrExpiredToken)
	_, err = env.reset.ValidateToken(context.Background(), token)
	assert.ErrorIs(t, err, common.ErrInvalidOrExpiredToken)
}

func TestRequestReset_NewTokenReplacesOld(t *testing.T) {
	env := newTestEnv(t)
	env.signup(t, "alice", "a@x.com", "secret123")

	first := requestToken(t, env, "a@x.com")
	second := requestToken(t, env, "a@x.com")
	require.NotEqual(t, first, second)

	assert.ErrorIs(t, env.reset.ResetPassword(context.Background(), first, "newpass"), common.ErrInvalidOrExpiredToken)
	assert.NoError(t, env.reset.ResetPassword(context.Background(), second, "newpass"))
}

func TestResetPassword_Validation(t *testing.T) {
	env := newTestEnv(t)
	env.signup(t, "alice", "a@x.com", "secret123")
	token := requestToken(t, env, "a@x.com")

	assert.ErrorIs(t, env.reset.ResetPassword(context.Background(), token, "123"), common.ErrValidation)
	assert.ErrorIs(t, env.reset.ResetPassword(context.Background(), "", "newpass"), common.ErrInvalidOrExpiredToken)
	assert.ErrorIs(t, env.reset.ResetPassword(context.Background(), "deadbeef", "newpass"), common.ErrInvalidOrExpiredToken)

	// The rejected attempts left the token usable.
	assert.NoError(t, env.reset.ResetPassword(context.Background(), token, "newpass"))
}

func TestResetPassword_ConcurrentConsumeSingleWinner(t *testing.T) {
	env := newTestEnv(t)
	env.signup(t, "alice", "a@x.com", "secret123")
	token := requestToken(t, env, "a@x.com")

	var (
		wg      sync.WaitGroup
		success atomic.Int32
	)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := env.reset.ResetPassword(context.Background(), token, "newpass")
			if err == nil {
				success.Add(1)
				return
			}
			assert.ErrorIs(t, err, common.ErrInvalidOrExpiredToken)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), success.Load())
}

var resetCols = []string{"id", "username", "email", "password_hash", "google_id", "github_id", "role", "reset_token", "reset_token_expiry", "created_at", "updated_at"}

func TestResetPassword_SQLStoreUsesLockingTransaction(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	env := newTestEnvWithStore(t, repomanager.NewSQLStore(db))
	digest := digestToken("tok")
	row := func() *sqlmock.Rows {
		return sqlmock.NewRows(resetCols).
			AddRow("a-1", "alice", "a@x.com", "oldhash", nil, nil, "user", digest, testStart.Add(time.Hour), testStart, testStart)
	}

	mock.ExpectQuery(`WHERE reset_token = \$1 AND reset_token_expiry > \$2$`).
		WithArgs(digest, testStart).WillReturnRows(row())
	mock.ExpectBegin()
	mock.ExpectQuery(`WHERE reset_token = \$1 AND reset_token_expiry > \$2 FOR UPDATE`).
		WithArgs(digest, testStart).WillReturnRows(row())
	mock.ExpectExec(`UPDATE accounts\s+SET password_hash = \$1, reset_token = NULL`).
		WithArgs(sqlmock.AnyArg(), testStart, "a-1", digest).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, env.reset.ResetPassword(context.Background(), "tok", "newpass"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestResetPassword_SQLStoreLostRaceRollsBack(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	env := newTestEnvWithStore(t, repomanager.NewSQLStore(db))
	digest := digestToken("tok")
	row := func() *sqlmock.Rows {
		return sqlmock.NewRows(resetCols).
			AddRow("a-1", "alice", "a@x.com", "oldhash", nil, nil, "user", digest, testStart.Add(time.Hour), testStart, testStart)
	}

	mock.ExpectQuery(`reset_token_expiry > \$2$`).WillReturnRows(row())
	mock.ExpectBegin()
	mock.ExpectQuery(`FOR UPDATE`).WillReturnRows(row())
	mock.ExpectExec(`UPDATE accounts`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err = env.reset.ResetPassword(context.Background(), "tok", "newpass")
	assert.ErrorIs(t, err, common.ErrInvalidOrExpiredToken)
	require.NoError(t, mock.ExpectationsWereMet())
}
