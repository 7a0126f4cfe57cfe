package jetstream_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	natsjs "github.com/nats-io/nats.go/jetstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finara-labs/finara-backend/internal/adapter"
	"github.com/finara-labs/finara-backend/internal/domain"
	"github.com/finara-labs/finara-backend/internal/logger"
	"github.com/finara-labs/finara-backend/internal/messaging"
	"github.com/finara-labs/finara-backend/internal/mocks"
	"github.com/finara-labs/finara-backend/internal/providers/jetstream"
)

func TestMain(m *testing.M) {
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

type testPublisherMocks struct {
	ctrl   *gomock.Controller
	natsJS *mocks.MockNatsJetStream
	conn   *mocks.MockNatsConn
	js     *mocks.MockJetStream
}

func setupTestPublisher(t *testing.T) *testPublisherMocks {
	ctrl := gomock.NewController(t)

	return &testPublisherMocks{
		ctrl:   ctrl,
		natsJS: mocks.NewMockNatsJetStream(ctrl),
		conn:   mocks.NewMockNatsConn(ctrl),
		js:     mocks.NewMockJetStream(ctrl),
	}
}

func testConfig() jetstream.Config {
	return jetstream.Config{
		URL:            "nats://localhost:4222",
		StreamName:     "FINARA_EVENTS",
		MaxReconnects:  3,
		ReconnectWait:  time.Second,
		ConnectionName: "finara-api",
	}
}

func (tm *testPublisherMocks) connect(t *testing.T) messaging.Publisher {
	tm.natsJS.EXPECT().Connect("nats://localhost:4222", gomock.Any()).Return(tm.conn, tm.js, nil)
	tm.js.EXPECT().
		CreateOrUpdateStream(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, cfg natsjs.StreamConfig) error {
			assert.Equal(t, "FINARA_EVENTS", cfg.Name)
			assert.Equal(t, []string{"finara.>"}, cfg.Subjects)
			return nil
		})

	p, err := jetstream.NewPublisher(context.Background(), testConfig(), tm.natsJS, adapter.NewJSON(), adapter.NewJCS())
	require.NoError(t, err)
	return p
}

func TestPublishEvent(t *testing.T) {
	tm := setupTestPublisher(t)
	p := tm.connect(t)

	event := messaging.NewEvent(domain.EventTypeLoanCreated, "0x1111111111111111111111111111111111111111", time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))
	event.Wallet = "0x2222222222222222222222222222222222222222"
	event.TxHash = "0xabc"
	event.Data = map[string]any{"loanAmount": "1000", "collateralAmount": "1500"}

	tm.js.EXPECT().
		Publish(gomock.Any(), "finara.loan.created", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, data []byte, opts ...natsjs.PublishOpt) (*natsjs.PubAck, error) {
			assert.Len(t, opts, 1)

			var decoded map[string]any
			require.NoError(t, json.Unmarshal(data, &decoded))
			assert.Equal(t, event.ID, decoded["id"])
			assert.Equal(t, "0xabc", decoded["tx_hash"])

			// canonical JSON sorts keys, so "bank_address" precedes "data"
			assert.Less(t, bytes.Index(data, []byte(`"bank_address"`)), bytes.Index(data, []byte(`"data"`)))
			return &natsjs.PubAck{Stream: "FINARA_EVENTS", Sequence: 1}, nil
		})

	require.NoError(t, p.PublishEvent(context.Background(), event))

	tm.conn.EXPECT().Close()
	p.Close()
}

func TestPublishEvent_Failure(t *testing.T) {
	tm := setupTestPublisher(t)
	p := tm.connect(t)

	tm.js.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("nats: timeout"))

	err := p.PublishEvent(context.Background(), messaging.NewEvent(domain.EventTypeBankDeployed, "0x1", time.Now()))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to publish event")
}

func TestNewPublisher_ConnectFailure(t *testing.T) {
	tm := setupTestPublisher(t)
	tm.natsJS.EXPECT().Connect(gomock.Any(), gomock.Any()).Return(nil, nil, errors.New("no servers available"))

	_, err := jetstream.NewPublisher(context.Background(), testConfig(), tm.natsJS, adapter.NewJSON(), adapter.NewJCS())

	require.Error(t, err)
}

func TestNewPublisher_StreamFailureClosesConnection(t *testing.T) {
	tm := setupTestPublisher(t)
	tm.natsJS.EXPECT().Connect(gomock.Any(), gomock.Any()).Return(tm.conn, tm.js, nil)
	tm.js.EXPECT().CreateOrUpdateStream(gomock.Any(), gomock.Any()).Return(errors.New("insufficient resources"))
	tm.conn.EXPECT().Close()

	_, err := jetstream.NewPublisher(context.Background(), testConfig(), tm.natsJS, adapter.NewJSON(), adapter.NewJCS())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "FINARA_EVENTS")
}

func TestPublishEvent_EncodingFailures(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(jsonMock *mocks.MockJSON, jcsMock *mocks.MockJCS)
		wantErr string
	}{
		{
			name: "marshal",
			setup: func(jsonMock *mocks.MockJSON, _ *mocks.MockJCS) {
				jsonMock.EXPECT().Marshal(gomock.Any()).Return(nil, errors.New("unsupported value"))
			},
			wantErr: "failed to marshal event",
		},
		{
			name: "canonicalize",
			setup: func(jsonMock *mocks.MockJSON, jcsMock *mocks.MockJCS) {
				jsonMock.EXPECT().Marshal(gomock.Any()).Return([]byte(`{"id":"x"}`), nil)
				jcsMock.EXPECT().Transform([]byte(`{"id":"x"}`)).Return(nil, errors.New("invalid number"))
			},
			wantErr: "failed to canonicalize event",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm := setupTestPublisher(t)
			jsonMock := mocks.NewMockJSON(tm.ctrl)
			jcsMock := mocks.NewMockJCS(tm.ctrl)

			tm.natsJS.EXPECT().Connect(gomock.Any(), gomock.Any()).Return(tm.conn, tm.js, nil)
			tm.js.EXPECT().CreateOrUpdateStream(gomock.Any(), gomock.Any()).Return(nil)
			p, err := jetstream.NewPublisher(context.Background(), testConfig(), tm.natsJS, jsonMock, jcsMock)
			require.NoError(t, err)

			tt.setup(jsonMock, jcsMock)

			err = p.PublishEvent(context.Background(), messaging.NewEvent(domain.EventTypeBankDeployed, "0x1", time.Now()))

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
