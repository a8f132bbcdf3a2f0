//go:build integration

package postgres_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/dtroode/aethercure-server/internal/model"
	repo "github.com/dtroode/aethercure-server/internal/repository/postgres"
)

var dsn string

func TestMain(m *testing.M) {
	ctx := context.Background()
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "postgres:15-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "postgres",
				"POSTGRES_PASSWORD": "password",
				"POSTGRES_DB":       "aethercure_test",
			},
			WaitingFor: wait.ForListeningPort("5432/tcp").WithStartupTimeout(2 * time.Minute),
		},
		Started: true,
	})
	if err != nil {
		panic(err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		panic(err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		panic(err)
	}
	dsn = fmt.Sprintf("postgres://postgres:password@%s:%s/aethercure_test?sslmode=disable", host, port.Port())

	code := m.Run()
	_ = container.Terminate(ctx)
	os.Exit(code)
}

func newUser(suffix string) model.User {
	return model.User{
		Email:      suffix + "@example.com",
		Username:   "user_" + suffix,
		Credential: "c3RvcmVkLWNyZWRlbnRpYWw=",
	}
}

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	conn, err := repo.NewConection(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	ur := repo.NewUserRepository(conn)

	saved, err := ur.Create(ctx, newUser("alice"))
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, saved.ID)

	_, err = ur.Create(ctx, newUser("alice"))
	require.ErrorIs(t, err, model.ErrAlreadyExists)

	byEmail, err := ur.GetByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	require.Equal(t, saved.ID, byEmail.ID)

	exists, err := ur.UsernameExists(ctx, "user_alice")
	require.NoError(t, err)
	require.True(t, exists)

	exists, err = ur.UsernameExists(ctx, "nobody")
	require.NoError(t, err)
	require.False(t, exists)

	updated, err := ur.UpdateCredential(ctx, saved.ID, "bmV3LWNyZWRlbnRpYWw=")
	require.NoError(t, err)
	require.Equal(t, "bmV3LWNyZWRlbnRpYWw=", updated.Credential)

	chain := "0xabc"
	sharable := true
	updated, err = ur.Update(ctx, saved.ID, model.UserUpdate{BlockchainID: &chain, DataSharable: &sharable})
	require.NoError(t, err)
	require.Equal(t, chain, updated.BlockchainID)
	require.True(t, updated.DataSharable)
	require.Equal(t, "user_alice", updated.Username)

	bob, err := ur.Create(ctx, newUser("bob"))
	require.NoError(t, err)
	taken := "alice@example.com"
	_, err = ur.Update(ctx, bob.ID, model.UserUpdate{Email: &taken})
	require.ErrorIs(t, err, model.ErrAlreadyExists)

	users, err := ur.List(ctx)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(users), 2)

	require.NoError(t, ur.Delete(ctx, bob.ID))
	require.ErrorIs(t, ur.Delete(ctx, bob.ID), model.ErrNotFound)

	_, err = ur.GetByID(ctx, bob.ID)
	require.ErrorIs(t, err, model.ErrNotFound)
}

func TestFileAndShareRepositories(t *testing.T) {
	ctx := context.Background()
	conn, err := repo.NewConection(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	ur := repo.NewUserRepository(conn)
	fr := repo.NewFileRepository(conn)
	sr := repo.NewShareRepository(conn)

	owner, err := ur.Create(ctx, newUser("owner"))
	require.NoError(t, err)
	stranger, err := ur.Create(ctx, newUser("stranger"))
	require.NoError(t, err)

	file, err := fr.Create(ctx, model.File{
		OwnerID:  owner.ID,
		URL:      "https://ipfs.example.com/ipfs/Qm123",
		FileUUID: uuid.NewString(),
		IPFSHash: "Qm123",
		FileName: "scan.pdf",
		FileType: model.DefaultFileType,
	})
	require.NoError(t, err)

	files, err := fr.GetByOwnerID(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, files, 1)

	name := "renamed.pdf"
	updated, err := fr.Update(ctx, file.ID, owner.ID, model.FileUpdate{FileName: &name})
	require.NoError(t, err)
	assert.Equal(t, name, updated.FileName)

	_, err = fr.Update(ctx, file.ID, stranger.ID, model.FileUpdate{FileName: &name})
	require.ErrorIs(t, err, model.ErrNotFound)

	now := time.Now()
	share, err := sr.Create(ctx, model.Share{
		ID:        uuid.New(),
		FileID:    file.ID,
		OwnerID:   owner.ID,
		ExpiresAt: now.Add(time.Hour),
	})
	require.NoError(t, err)

	active, err := sr.GetActive(ctx, share.ID, now)
	require.NoError(t, err)
	assert.Equal(t, name, active.FileName)

	_, err = sr.GetActive(ctx, share.ID, now.Add(2*time.Hour))
	require.ErrorIs(t, err, model.ErrNotFound)

	list, err := sr.GetByOwnerID(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)

	_, err = sr.Delete(ctx, share.ID, stranger.ID)
	require.ErrorIs(t, err, model.ErrNotFound)

	_, err = sr.Delete(ctx, share.ID, owner.ID)
	require.NoError(t, err)
	_, err = sr.GetActive(ctx, share.ID, time.Now().Add(time.Second))
	require.ErrorIs(t, err, model.ErrNotFound)

	_, err = fr.Delete(ctx, file.ID, stranger.ID)
	require.ErrorIs(t, err, model.ErrNotFound)
	_, err = fr.Delete(ctx, file.ID, owner.ID)
	require.NoError(t, err)
}

func TestMedicalRepository(t *testing.T) {
	ctx := context.Background()
	conn, err := repo.NewConection(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	ur := repo.NewUserRepository(conn)
	mr := repo.NewMedicalRepository(conn)

	user, err := ur.Create(ctx, newUser("patient"))
	require.NoError(t, err)

	_, err = mr.GetByUserID(ctx, user.ID)
	require.ErrorIs(t, err, model.ErrNotFound)

	first, err := mr.Upsert(ctx, model.MedicalInfo{UserID: user.ID, MedicalCondition: "asthma"})
	require.NoError(t, err)

	second, err := mr.Upsert(ctx, model.MedicalInfo{UserID: user.ID, MedicalCondition: "asthma", MedicalBackground: "since 2010", ShareData: true})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.True(t, second.ShareData)

	got, err := mr.GetByUserID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "since 2010", got.MedicalBackground)

	_, err = mr.DeleteByUserID(ctx, user.ID)
	require.NoError(t, err)
	_, err = mr.DeleteByUserID(ctx, user.ID)
	require.ErrorIs(t, err, model.ErrNotFound)
}
