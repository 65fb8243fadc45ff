package decoder_test

import (
	"context"
	"errors"
	"idcode/internal/decoder"
	"idcode/internal/report"
	"idcode/pkg/idcode"
	"idcode/pkg/metrics"
	"idcode/pkg/serrors"
	"os"
	"path/filepath"
	"testing"

	mockreport "idcode/internal/report/mock"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const codesPath = "Data/idCodes.txt"

func newTestDecoder(t *testing.T, files map[string]string) (*mockreport.MockReporter, decoder.Decoder) {
	t.Helper()

	ctrl := gomock.NewController(t)
	rep := mockreport.NewMockReporter(ctrl)

	fs := afero.NewMemMapFs()
	for name, content := range files {
		require.NoError(t, afero.WriteFile(fs, name, []byte(content), 0o644))
	}

	return rep, decoder.New(decoder.Deps{Reporter: rep, Fs: fs})
}

// expectRecords expects the reporter to receive one record per code, in order.
func expectRecords(t *testing.T, rep *mockreport.MockReporter, origin report.Origin, codes ...string) {
	t.Helper()

	calls := make([]any, 0, len(codes))
	for _, code := range codes {
		code := code
		calls = append(calls, rep.EXPECT().Record(gomock.Any(), gomock.Any(), origin).DoAndReturn(
			func(_ context.Context, rec idcode.Record, _ report.Origin) error {
				if rec.Code != code {
					t.Errorf("expected record for %q, got %q", code, rec.Code)
				}

				return nil
			},
		))
	}
	gomock.InOrder(calls...)
}

func TestDecoder_Code(t *testing.T) {
	rep, d := newTestDecoder(t, nil)
	expectRecords(t, rep, report.OriginArgument, "34501234215")

	rec, err := d.Code(context.Background(), "34501234215")
	require.NoError(t, err)
	require.True(t, rec.Valid())
}

func TestDecoder_Code_InvalidCodeIsNotAnError(t *testing.T) {
	rep, d := newTestDecoder(t, nil)
	expectRecords(t, rep, report.OriginArgument, "3450123421X")

	rec, err := d.Code(context.Background(), "3450123421X")
	require.NoError(t, err)
	require.False(t, rec.Valid())
	require.ErrorIs(t, rec.Structure, serrors.ErrStructural)
}

func TestDecoder_Code_ReporterError(t *testing.T) {
	rep, d := newTestDecoder(t, nil)
	rep.EXPECT().Record(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("broken pipe"))

	_, err := d.Code(context.Background(), "34501234215")
	require.Error(t, err)
}

func TestDecoder_File_ContinuesPastFailures(t *testing.T) {
	rep, d := newTestDecoder(t, map[string]string{
		codesPath: "34501234215\n39902304215\n\n3450123421\n49912317001\n",
	})
	expectRecords(t, rep, report.OriginFile, "34501234215", "39902304215", "3450123421", "49912317001")

	summary, err := d.File(context.Background(), codesPath)
	require.NoError(t, err)
	require.Equal(t, codesPath, summary.Source)
	require.Equal(t, 4, summary.Total)
	require.Equal(t, 2, summary.Valid)
	require.Equal(t, 2, summary.Invalid)
}

func TestDecoder_File_NotFound(t *testing.T) {
	rep, d := newTestDecoder(t, nil)
	rep.EXPECT().SourceError(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, err error) error {
			require.ErrorIs(t, err, serrors.ErrSourceNotFound)

			return nil
		},
	)

	summary, err := d.File(context.Background(), codesPath)
	require.ErrorIs(t, err, serrors.ErrSourceNotFound)
	require.Zero(t, summary.Total)
}

func TestDecoder_File_EmptyFile(t *testing.T) {
	_, d := newTestDecoder(t, map[string]string{codesPath: "\n\n"})

	summary, err := d.File(context.Background(), codesPath)
	require.NoError(t, err)
	require.Zero(t, summary.Total)
}

func TestDecoder_File_Canceled(t *testing.T) {
	_, d := newTestDecoder(t, map[string]string{codesPath: "34501234215\n"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := d.File(ctx, codesPath)
	require.ErrorIs(t, err, context.Canceled)
}

func TestDecoder_File_RecordsMetrics(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	rep := mockreport.NewMockReporter(ctrl)
	rep.EXPECT().Record(gomock.Any(), gomock.Any(), report.OriginFile).Return(nil).Times(2)

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, codesPath, []byte("34501234215\n34501237018\n"), 0o644))

	rec, err := metrics.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = rec.Shutdown(ctx) })

	d := decoder.New(decoder.Deps{Reporter: rep, Metrics: rec, Fs: fs})
	_, err = d.File(ctx, codesPath)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "idcode.prom")
	require.NoError(t, rec.WriteTextfile(path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), `kind="UNKNOWN_FACILITY"`)
}
