package seed

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/dmitrijs2005/clientdb/internal/common"
	"github.com/dmitrijs2005/clientdb/internal/logging"
	"github.com/dmitrijs2005/clientdb/internal/registry/models"
	"github.com/dmitrijs2005/clientdb/internal/registry/printer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type call struct {
	op   string
	args []any
}

// fakeRegistry records calls and hands out sequential ids.
type fakeRegistry struct {
	calls  []call
	nextID int64

	addErrAt  int
	addErr    error
	deleteErr error
	rows      []*models.ClientRow
}

func (f *fakeRegistry) AddClient(ctx context.Context, first, last, email string, tel *string) (int64, error) {
	f.calls = append(f.calls, call{"AddClient", []any{first, last, email, tel}})
	if f.addErr != nil && len(f.calls) == f.addErrAt {
		return 0, f.addErr
	}
	f.nextID++
	return f.nextID, nil
}

func (f *fakeRegistry) ChangeClient(ctx context.Context, id int64, ch models.ClientChanges) error {
	f.calls = append(f.calls, call{"ChangeClient", []any{id, ch}})
	return nil
}

func (f *fakeRegistry) DeleteClient(ctx context.Context, id int64) (*models.DeletedClient, error) {
	f.calls = append(f.calls, call{"DeleteClient", []any{id}})
	if f.deleteErr != nil {
		return nil, f.deleteErr
	}
	return &models.DeletedClient{ID: id, FirstName: "Sergey", LastName: "Frolov", Email: "sergey@gmail.com"}, nil
}

func (f *fakeRegistry) GetClient(ctx context.Context, id int64) (*models.Client, error) {
	return nil, common.ErrorNotFound
}

func (f *fakeRegistry) AddPhone(ctx context.Context, clientID int64, tel string) (int64, error) {
	return 0, nil
}

func (f *fakeRegistry) DeletePhone(ctx context.Context, tel string) (int64, error) {
	f.calls = append(f.calls, call{"DeletePhone", []any{tel}})
	return 1, nil
}

func (f *fakeRegistry) ListPhones(ctx context.Context, clientID int64) ([]*models.Phone, error) {
	return nil, nil
}

func (f *fakeRegistry) FindClient(ctx context.Context, filter models.ClientFilter) ([]*models.ClientRow, error) {
	f.calls = append(f.calls, call{"FindClient", []any{filter}})
	return f.rows, nil
}

type fakeSchema struct {
	initialized, created int
	err                  error
}

func (s *fakeSchema) Initialize(context.Context) error { s.initialized++; return s.err }
func (s *fakeSchema) Create(context.Context) error     { s.created++; return s.err }

func discardLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestRun_FullSequence(t *testing.T) {
	reg := &fakeRegistry{rows: []*models.ClientRow{{ClientID: 4, FirstName: "Natalia", LastName: "Kuznetsova", Email: "natalia@bk.ru"}}}
	sch := &fakeSchema{}
	var out bytes.Buffer

	err := NewRunner(reg, sch, printer.New(&out), discardLogger()).Run(context.Background(), true)
	require.NoError(t, err)

	assert.Equal(t, 1, sch.initialized)
	assert.Equal(t, 0, sch.created)

	require.Len(t, reg.calls, len(Clients)+5)
	for i, c := range Clients {
		got := reg.calls[i]
		assert.Equal(t, "AddClient", got.op)
		assert.Equal(t, c.FirstName, got.args[0])
		tel := got.args[3].(*string)
		if c.Telephone == "" {
			assert.Nil(t, tel, c.FirstName)
		} else {
			require.NotNil(t, tel)
			assert.Equal(t, c.Telephone, *tel)
		}
	}

	rest := reg.calls[len(Clients):]
	assert.Equal(t, call{"ChangeClient", []any{int64(1), models.ClientChanges{LastName: models.Ptr("Sokolova")}}}, rest[0])
	assert.Equal(t, call{"ChangeClient", []any{int64(5), models.ClientChanges{Email: models.Ptr("mikhail_updated@yahoo.com")}}}, rest[1])
	assert.Equal(t, call{"DeletePhone", []any{"89167778823"}}, rest[2])
	assert.Equal(t, call{"DeleteClient", []any{int64(3)}}, rest[3])
	assert.Equal(t, call{"FindClient", []any{models.ClientFilter{FirstName: models.Ptr("Natalia")}}}, rest[4])

	assert.Equal(t,
		"Client 3 (Sergey Frolov, sergey@gmail.com) deleted.\n"+
			"4\tNatalia\tKuznetsova\tnatalia@bk.ru\tNULL\n",
		out.String())
}

func TestRun_NoResetOnlyCreates(t *testing.T) {
	sch := &fakeSchema{}
	err := NewRunner(&fakeRegistry{}, sch, printer.New(io.Discard), discardLogger()).Run(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, 0, sch.initialized)
	assert.Equal(t, 1, sch.created)
}

func TestRun_SchemaErrorAborts(t *testing.T) {
	reg := &fakeRegistry{}
	sch := &fakeSchema{err: errors.New("permission denied")}

	err := NewRunner(reg, sch, printer.New(io.Discard), discardLogger()).Run(context.Background(), true)
	require.ErrorContains(t, err, "initialize schema: permission denied")
	assert.Empty(t, reg.calls)
}

func TestRun_AddErrorAbortsAndKeepsEarlierInserts(t *testing.T) {
	reg := &fakeRegistry{addErrAt: 4, addErr: common.ErrConstraintViolation}

	err := NewRunner(reg, &fakeSchema{}, printer.New(io.Discard), discardLogger()).Run(context.Background(), true)
	require.ErrorIs(t, err, common.ErrConstraintViolation)
	assert.Contains(t, err.Error(), "seed Natalia Kuznetsova")
	assert.Len(t, reg.calls, 4, "nothing runs after the failing insert")
}

func TestRun_DeleteNotFoundIsReported(t *testing.T) {
	reg := &fakeRegistry{deleteErr: common.ErrorNotFound}
	var out bytes.Buffer

	err := NewRunner(reg, &fakeSchema{}, printer.New(&out), discardLogger()).Run(context.Background(), true)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Client 3 not found, nothing deleted.\n")
	assert.Contains(t, out.String(), "Client not found.\n")
}
