package tabular

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/you-humble/phone-rent/internal/client/tabular/mocks"
	"github.com/you-humble/phone-rent/internal/model"
)

func TestLoaderLoad(t *testing.T) {
	t.Parallel()

	const (
		primaryCSV  = "Brand,Model\nApple,iPhone 13\nGoogle,Pixel 7\n"
		fallbackCSV = "Brand,Model\nSamsung,Galaxy S22\n"
	)

	type deps struct {
		primary  *mocks.MockSource
		fallback *mocks.MockSource
	}

	type testCase struct {
		name        string
		noFallback  bool
		setup       func(d deps)
		assert      func(t *testing.T, rows []model.RawRow, err error, d deps)
	}

	tests := []testCase{
		{
			name: "primary ok: fallback untouched",
			setup: func(d deps) {
				d.primary.On("Read", mock.Anything).Return(primaryCSV, nil).Once()
			},
			assert: func(t *testing.T, rows []model.RawRow, err error, d deps) {
				require.NoError(t, err)
				assert.Len(t, rows, 2)
				d.fallback.AssertNotCalled(t, "Read", mock.Anything)
			},
		},
		{
			name: "primary unreachable: fallback used once",
			setup: func(d deps) {
				d.primary.On("Read", mock.Anything).Return("", errors.New("connection refused")).Once()
				d.fallback.On("Read", mock.Anything).Return(fallbackCSV, nil).Once()
			},
			assert: func(t *testing.T, rows []model.RawRow, err error, d deps) {
				require.NoError(t, err)
				require.Len(t, rows, 1)
				assert.Equal(t, "Samsung", rows[0][0].Value)
			},
		},
		{
			name: "primary blank: treated as parse failure",
			setup: func(d deps) {
				d.primary.On("Read", mock.Anything).Return("  \n", nil).Once()
				d.fallback.On("Read", mock.Anything).Return(fallbackCSV, nil).Once()
			},
			assert: func(t *testing.T, rows []model.RawRow, err error, d deps) {
				require.NoError(t, err)
				assert.Len(t, rows, 1)
			},
		},
		{
			name: "both fail: data unavailable",
			setup: func(d deps) {
				d.primary.On("Read", mock.Anything).Return("", errors.New("HTTP 404")).Once()
				d.fallback.On("Read", mock.Anything).Return("", errors.New("gone")).Once()
			},
			assert: func(t *testing.T, rows []model.RawRow, err error, d deps) {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrDataUnavailable)
				assert.ErrorContains(t, err, "HTTP 404")
				assert.ErrorContains(t, err, "gone")
				assert.Nil(t, rows)
			},
		},
		{
			name: "fallback empty: data unavailable",
			setup: func(d deps) {
				d.primary.On("Read", mock.Anything).Return("", errors.New("HTTP 500")).Once()
				d.fallback.On("Read", mock.Anything).Return("\n\n", nil).Once()
			},
			assert: func(t *testing.T, rows []model.RawRow, err error, d deps) {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrDataUnavailable)
				assert.Nil(t, rows)
			},
		},
		{
			name:       "no fallback configured: data unavailable",
			noFallback: true,
			setup: func(d deps) {
				d.primary.On("Read", mock.Anything).Return("", errors.New("timeout")).Once()
			},
			assert: func(t *testing.T, rows []model.RawRow, err error, d deps) {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrDataUnavailable)
				assert.Nil(t, rows)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := deps{
				primary:  mocks.NewMockSource(t),
				fallback: mocks.NewMockSource(t),
			}
			if tt.setup != nil {
				tt.setup(d)
			}

			var fallback Source = d.fallback
			if tt.noFallback {
				fallback = nil
			}

			rows, err := NewLoader(d.primary, fallback, nil).Load(context.Background())
			tt.assert(t, rows, err, d)
		})
	}
}

func TestLoaderEmbeddedFallback(t *testing.T) {
	t.Parallel()

	l := NewLoader(NewFileSource("/definitely/not/here.csv"), Embedded(), nil)

	rows, err := l.Load(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, rows)
}

func TestLoaderEmptyEmbeddedFallback(t *testing.T) {
	t.Parallel()

	l := NewLoader(NewFileSource("/definitely/not/here.csv"), EmbeddedSource(""), nil)

	_, err := l.Load(context.Background())
	require.ErrorIs(t, err, model.ErrDataUnavailable)
}
