package notification

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/KNICEX/fxsignal/internal/service/signal"
	"github.com/KNICEX/fxsignal/pkg/decimalx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testEvent(kind signal.EventKind, action signal.Action) signal.Event {
	return signal.Event{
		Kind: kind,
		Signal: signal.Signal{
			CurrencyPair: "EUR/USD",
			Action:       action,
			Price:        decimal.NewNullDecimal(decimalx.MustFromString("1.3952")),
			TrendImg:     "/img/buy.png",
			From:         time.Date(2026, time.October, 22, 16, 41, 0, 0, time.UTC),
			To:           time.Date(2026, time.October, 22, 20, 41, 0, 0, time.UTC),
		},
		ReferencePrice: decimal.NewNullDecimal(decimalx.MustFromString("1.3960")),
	}
}

func TestConsolePrinter(t *testing.T) {
	testCases := []struct {
		name string
		ev   signal.Event
		want string
	}{
		{
			name: "new",
			ev:   testEvent(signal.EventNew, signal.ActionBuy),
			want: "-- NEW --\nEUR/USD\nBuy -> 1.3952\n current price\n  mid: 1.396\n  valid\n  from: 2026-10-22 16:41:00\n  to:   2026-10-22 20:41:00\n",
		},
		{
			name: "finish",
			ev:   testEvent(signal.EventFinish, signal.ActionFilled),
			want: "-- FINISH --\nEUR/USD\n",
		},
		{
			name: "cancel",
			ev:   testEvent(signal.EventCancel, signal.ActionCancelled),
			want: "-- CANCEL --\nEUR/USD\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			p := NewConsolePrinter(&buf)

			ev := tc.ev
			var err error
			switch ev.Kind {
			case signal.EventNew:
				err = p.OnNewSignal(context.Background(), ev)
			case signal.EventFinish:
				err = p.OnFinishSignal(context.Background(), ev)
			case signal.EventCancel:
				err = p.OnCancelSignal(context.Background(), ev)
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, buf.String())
		})
	}
}

func TestBody_WithoutPrices(t *testing.T) {
	ev := testEvent(signal.EventUpdate, signal.ActionPending)
	ev.Signal.Price = decimal.NullDecimal{}
	ev.ReferencePrice = decimal.NullDecimal{}
	ev.Signal.From = time.Time{}

	assert.Equal(t, "EUR/USD\nPending -> -\n current price\n  mid: \n  valid\n  from: -\n  to:   2026-10-22 20:41:00", body(ev))
}

type MockSender struct {
	mock.Mock
}

func (m *MockSender) Send(ctx context.Context, msg Message) error {
	return m.Called(msg).Error(0)
}

func (m *MockSender) Name() string {
	return "mock"
}

func TestNotifier_SendsToAllSenders(t *testing.T) {
	failing := &MockSender{}
	ok := &MockSender{}
	ev := testEvent(signal.EventUpdate, signal.ActionSell)
	want := Message{Title: "-- UPDATE --", Body: body(ev), Tag: "sell"}
	failing.On("Send", want).Return(errors.New("dbus unavailable")).Once()
	ok.On("Send", want).Return(nil).Once()

	n := NewNotifier(failing, ok)
	err := n.OnUpdateSignal(context.Background(), ev)
	assert.ErrorContains(t, err, "dbus unavailable")

	failing.AssertExpectations(t)
	ok.AssertExpectations(t)
}

func TestDesktopSender_Send(t *testing.T) {
	d := NewDesktopSender()
	var gotName string
	var gotArgs []string
	d.run = func(ctx context.Context, name string, args ...string) ([]byte, error) {
		gotName, gotArgs = name, args
		return nil, nil
	}

	require.NoError(t, d.Send(context.Background(), Message{Title: "-- NEW --", Body: "EUR/USD", Tag: "buy"}))
	assert.Equal(t, "notify-send", gotName)
	assert.Equal(t, []string{"--urgency=low", "--expire-time=10000", "--app-name=fxsignal", "--category=buy", "-- NEW --", "EUR/USD"}, gotArgs)

	d.run = func(ctx context.Context, name string, args ...string) ([]byte, error) {
		return []byte("cannot open display\n"), errors.New("exit status 1")
	}
	err := d.Send(context.Background(), Message{Title: "t", Body: "b", Tag: "default"})
	assert.ErrorContains(t, err, "cannot open display")
}

func TestTelegramSender_Send(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bottoken/sendMessage", r.URL.Path)
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "-- NEW --\nEUR/USD", r.PostForm.Get("text"))
		if r.PostForm.Get("chat_id") == "42" {
			_, _ = w.Write([]byte(`{"ok":true}`))
			return
		}
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	tg := NewTelegramSender("token", "42")
	tg.baseURL = srv.URL
	require.NoError(t, tg.Send(context.Background(), Message{Title: "-- NEW --", Body: "EUR/USD"}))

	bad := NewTelegramSender("token", "0")
	bad.baseURL = srv.URL
	err := bad.Send(context.Background(), Message{Title: "-- NEW --", Body: "EUR/USD"})
	assert.ErrorContains(t, err, "status 400")
}
