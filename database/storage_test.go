package database

import (
	"net"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/biosecret/taskflow/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// exerciseStorage runs the behaviour every driver must share.
func exerciseStorage(t *testing.T, s Storage) {
	t.Helper()

	_, ok, err := s.Get("missing")
	require.NoError(t, err)
	assert.False(t, ok, "missing key should not be found")

	require.NoError(t, s.Set("taskflow_user", "alice"))
	v, ok, err := s.Get("taskflow_user")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "alice", v)

	require.NoError(t, s.Set("taskflow_user", "bob"))
	v, _, err = s.Get("taskflow_user")
	require.NoError(t, err)
	assert.Equal(t, "bob", v, "Set should overwrite")

	require.NoError(t, s.Set("empty", ""))
	v, ok, err = s.Get("empty")
	require.NoError(t, err)
	assert.True(t, ok, "an empty value is still present")
	assert.Empty(t, v)

	require.NoError(t, s.Delete("taskflow_user"))
	_, ok, err = s.Get("taskflow_user")
	require.NoError(t, err)
	assert.False(t, ok)

	// deleting twice is a no-op
	require.NoError(t, s.Delete("taskflow_user"))
}

func TestMemory(t *testing.T) {
	exerciseStorage(t, NewMemory())
}

func TestFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile", "taskflow.json")
	s, err := NewFile(path)
	require.NoError(t, err)
	exerciseStorage(t, s)
}

func TestFile_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "taskflow.json")
	s, err := NewFile(path)
	require.NoError(t, err)
	require.NoError(t, s.Set("taskflow_darkmode", "true"))
	require.NoError(t, s.Close())

	reopened, err := NewFile(path)
	require.NoError(t, err)
	v, ok, err := reopened.Get("taskflow_darkmode")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "true", v)
}

func TestFile_KeepsFileMode(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix permissions")
	}

	fresh := filepath.Join(t.TempDir(), "fresh.json")
	s, err := NewFile(fresh)
	require.NoError(t, err)
	require.NoError(t, s.Set("taskflow_user", "alice"))
	info, err := os.Stat(fresh)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())

	shared := filepath.Join(t.TempDir(), "shared.json")
	require.NoError(t, os.WriteFile(shared, []byte("{}"), 0o600))
	require.NoError(t, os.Chmod(shared, 0o640))
	s, err = NewFile(shared)
	require.NoError(t, err)
	require.NoError(t, s.Set("taskflow_user", "bob"))
	info, err = os.Stat(shared)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o640), info.Mode().Perm())
}

func TestFile_CorruptFileReadsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "taskflow.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	s, err := NewFile(path)
	require.NoError(t, err)

	_, ok, err := s.Get("taskflow_user")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set("taskflow_user", "carol"))
	v, _, err := s.Get("taskflow_user")
	require.NoError(t, err)
	assert.Equal(t, "carol", v)
}

func TestSQLite(t *testing.T) {
	s, err := NewSQLite(":memory:")
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Ping())
	exerciseStorage(t, s)
}

func TestSQLite_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "taskflow.db")
	s, err := NewSQLite(path)
	require.NoError(t, err)
	require.NoError(t, s.Set("k", "v"))
	require.NoError(t, s.Close())

	reopened, err := NewSQLite(path)
	require.NoError(t, err)
	defer reopened.Close()
	v, ok, err := reopened.Get("k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v", v)
}

func TestRedis(t *testing.T) {
	conn, err := net.DialTimeout("tcp", "localhost:6379", 2*time.Second)
	if err != nil {
		t.Skipf("Redis not available at localhost:6379: %v", err)
	}
	conn.Close()

	s, err := NewRedis("localhost", 6379, "", 0, "taskflow-test:")
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Ping())
	exerciseStorage(t, s)
	require.NoError(t, s.Delete("empty"))
}

func TestPostgreSQL(t *testing.T) {
	uri := os.Getenv("POSTGRESQL_URI")
	if uri == "" {
		t.Skip("POSTGRESQL_URI not set")
	}

	s, err := NewPostgreSQL(uri)
	require.NoError(t, err)
	defer s.Close()

	exerciseStorage(t, s)
	require.NoError(t, s.Delete("empty"))
}

func TestMongo(t *testing.T) {
	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		t.Skip("MONGO_URI not set")
	}

	s, err := NewMongo(uri, "taskflow_test")
	require.NoError(t, err)
	defer s.Close()

	exerciseStorage(t, s)
	require.NoError(t, s.Delete("empty"))
	require.NoError(t, s.Ping())
}

func TestNewMongo_RequiresURI(t *testing.T) {
	_, err := NewMongo("", "")
	assert.Error(t, err)
}

func TestNewPostgreSQL_RequiresURI(t *testing.T) {
	_, err := NewPostgreSQL("")
	assert.Error(t, err)
}

func TestOpen(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.Storage
		want    any
		wantErr bool
	}{
		{name: "memory", cfg: config.Storage{Driver: "memory"}, want: &Memory{}},
		{name: "file", cfg: config.Storage{Driver: "file", Path: filepath.Join(t.TempDir(), "a.json")}, want: &File{}},
		{name: "default is file", cfg: config.Storage{Path: filepath.Join(t.TempDir(), "b.json")}, want: &File{}},
		{name: "sqlite", cfg: config.Storage{Driver: "sqlite", Path: ":memory:"}, want: &SQLite{}},
		{name: "unknown", cfg: config.Storage{Driver: "etcd"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Open(tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			defer s.Close()
			assert.IsType(t, tt.want, s)
		})
	}
}
