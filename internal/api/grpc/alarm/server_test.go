package alarm

import (
	"context"
	"errors"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/durationpb"

	domain "github.com/oshokin/interval-alarm/internal/domain/alarm"
	"github.com/oshokin/interval-alarm/internal/events"
	pb "github.com/oshokin/interval-alarm/internal/pb/v1"
	repository "github.com/oshokin/interval-alarm/internal/repository/schedule"
)

var errTestStorage = errors.New("test storage failure")

// fakeService implements Service in memory for unit testing the transport.
type fakeService struct {
	mu sync.Mutex
	// schedules are the stored schedules by id.
	schedules map[int64]*domain.Schedule
	// nextID is the id given to the next created schedule.
	nextID int64
	// ringing holds ids with a ringing session.
	ringing map[int64]bool
	// listErr is returned by List when set.
	listErr error
	// events feeds Subscribe.
	events chan events.Event
}

func newFakeService() *fakeService {
	return &fakeService{
		schedules: make(map[int64]*domain.Schedule),
		nextID:    1,
		ringing:   make(map[int64]bool),
		events:    make(chan events.Event, 8),
	}
}

func (f *fakeService) List(context.Context) ([]*domain.Schedule, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.listErr != nil {
		return nil, f.listErr
	}

	result := make([]*domain.Schedule, 0, len(f.schedules))
	for id := int64(1); id < f.nextID; id++ {
		if s, ok := f.schedules[id]; ok {
			result = append(result, s.Clone())
		}
	}

	return result, nil
}

func (f *fakeService) Get(_ context.Context, id int64) (*domain.Schedule, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	s, ok := f.schedules[id]
	if !ok {
		return nil, repository.ErrNotFound
	}

	return s.Clone(), nil
}

func (f *fakeService) Save(_ context.Context, edit *domain.Schedule) (*domain.Result, error) {
	if err := edit.Validate(); err != nil {
		return nil, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	s := edit.Clone()
	if s.ID == 0 {
		s.ID = f.nextID
		f.nextID++
	} else if _, ok := f.schedules[s.ID]; !ok {
		return nil, repository.ErrNotFound
	}

	return f.store(s), nil
}

func (f *fakeService) SetEnabled(_ context.Context, id int64, enabled bool) (*domain.Result, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	s, ok := f.schedules[id]
	if !ok {
		return nil, repository.ErrNotFound
	}

	s = s.Clone()
	s.Enabled = enabled

	return f.store(s), nil
}

// store saves s with a fixed next trigger when enabled. Callers hold mu.
func (f *fakeService) store(s *domain.Schedule) *domain.Result {
	status := domain.StatusDisabled
	s.NextTrigger = time.Time{}

	if s.Enabled {
		status = domain.StatusArmed
		s.NextTrigger = time.Date(2026, time.October, 19, 9, 30, 0, 0, time.UTC)
	}

	f.schedules[s.ID] = s

	return &domain.Result{Schedule: s.Clone(), Status: status}
}

func (f *fakeService) Delete(_ context.Context, id int64) (*domain.Result, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.schedules[id]; !ok {
		return nil, repository.ErrNotFound
	}

	delete(f.schedules, id)

	return &domain.Result{Status: domain.StatusDeleted}, nil
}

func (f *fakeService) Dismiss(_ context.Context, id int64) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	was := f.ringing[id]
	delete(f.ringing, id)

	return was
}

func (f *fakeService) IsRinging(id int64) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.ringing[id]
}

func (f *fakeService) Subscribe(context.Context) (<-chan events.Event, error) {
	return f.events, nil
}

// dial serves svc over an in-memory listener and returns a connected client.
func dial(t *testing.T, svc Service) pb.IntervalAlarmServiceClient {
	t.Helper()

	listener := bufconn.Listen(1 << 20)
	server := grpc.NewServer()
	pb.RegisterIntervalAlarmServiceServer(server, NewServer(svc))

	go func() {
		_ = server.Serve(listener)
	}()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return listener.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, conn.Close())
		server.Stop()
	})

	return pb.NewIntervalAlarmServiceClient(conn)
}

func workHours() *pb.Schedule {
	return &pb.Schedule{
		Label:           "Work Hours",
		Start:           "09:00",
		End:             "17:00",
		IntervalMinutes: 30,
		Days:            []string{"mon", "fri"},
		Enabled:         true,
		AutoDismiss:     durationpb.New(30 * time.Second),
	}
}

// TestServer_Validation ensures malformed requests return InvalidArgument without reaching the service.
func TestServer_Validation(t *testing.T) {
	t.Parallel()

	s := NewServer(newFakeService())
	ctx := context.Background()

	_, err := s.SaveSchedule(ctx, nil)
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = s.SaveSchedule(ctx, &pb.SaveScheduleRequest{Schedule: &pb.Schedule{Start: "9am", End: "17:00"}})
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = s.SaveSchedule(ctx, &pb.SaveScheduleRequest{Schedule: &pb.Schedule{Start: "09:00", End: "17:00", Days: []string{"funday"}}})
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = s.GetSchedule(ctx, &pb.GetScheduleRequest{Id: 0})
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = s.SetEnabled(ctx, nil)
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = s.DeleteSchedule(ctx, &pb.DeleteScheduleRequest{Id: -1})
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = s.Dismiss(ctx, &pb.DismissRequest{})
	require.Equal(t, codes.InvalidArgument, status.Code(err))
}

// TestServer_ErrorMapping maps domain and storage errors to gRPC codes.
func TestServer_ErrorMapping(t *testing.T) {
	t.Parallel()

	svc := newFakeService()
	s := NewServer(svc)
	ctx := context.Background()

	_, err := s.GetSchedule(ctx, &pb.GetScheduleRequest{Id: 5})
	require.Equal(t, codes.NotFound, status.Code(err))

	overnight := workHours()
	overnight.Start, overnight.End = "22:00", "06:00"

	_, err = s.SaveSchedule(ctx, &pb.SaveScheduleRequest{Schedule: overnight})
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	svc.listErr = errTestStorage

	_, err = s.ListSchedules(ctx, nil)
	require.Equal(t, codes.Internal, status.Code(err))
	require.NotContains(t, err.Error(), errTestStorage.Error())

	require.Equal(t, codes.Canceled, status.Code(toStatus(ctx, context.Canceled)))
}

// TestClient_Roundtrip exercises every unary method through the generated client.
func TestClient_Roundtrip(t *testing.T) {
	t.Parallel()

	svc := newFakeService()
	client := dial(t, svc)
	ctx := context.Background()

	saved, err := client.SaveSchedule(ctx, &pb.SaveScheduleRequest{Schedule: workHours()})
	require.NoError(t, err)
	require.Equal(t, string(domain.StatusArmed), saved.Status)
	require.Equal(t, int64(1), saved.GetSchedule().GetId())
	require.Equal(t, "09:00", saved.Schedule.Start)
	require.Equal(t, "17:00", saved.Schedule.End)
	require.Equal(t, []string{"mon", "fri"}, saved.Schedule.Days)
	require.Equal(t, 30*time.Second, saved.Schedule.AutoDismiss.AsDuration())
	require.Equal(t, string(domain.StateArmed), saved.Schedule.State)
	require.Equal(t,
		time.Date(2026, time.October, 19, 9, 30, 0, 0, time.UTC),
		saved.Schedule.NextTrigger.AsTime())

	svc.mu.Lock()
	svc.ringing[1] = true
	svc.mu.Unlock()

	got, err := client.GetSchedule(ctx, &pb.GetScheduleRequest{Id: 1})
	require.NoError(t, err)
	require.True(t, got.Schedule.Ringing)
	require.Equal(t, string(domain.StateArmed), got.Status)

	disabled, err := client.SetEnabled(ctx, &pb.SetEnabledRequest{Id: 1, Enabled: false})
	require.NoError(t, err)
	require.Equal(t, string(domain.StatusDisabled), disabled.Status)
	require.Nil(t, disabled.Schedule.NextTrigger)

	list, err := client.ListSchedules(ctx, new(pb.ListSchedulesRequest))
	require.NoError(t, err)
	require.Len(t, list.Schedules, 1)

	dismissed, err := client.Dismiss(ctx, &pb.DismissRequest{Id: 1})
	require.NoError(t, err)
	require.True(t, dismissed.Dismissed)

	dismissed, err = client.Dismiss(ctx, &pb.DismissRequest{Id: 1})
	require.NoError(t, err)
	require.False(t, dismissed.Dismissed)

	deleted, err := client.DeleteSchedule(ctx, &pb.DeleteScheduleRequest{Id: 1})
	require.NoError(t, err)
	require.Equal(t, string(domain.StatusDeleted), deleted.Status)

	_, err = client.GetSchedule(ctx, &pb.GetScheduleRequest{Id: 1})
	require.Equal(t, codes.NotFound, status.Code(err))
}

// TestClient_Watch streams events until the service closes the subscription.
func TestClient_Watch(t *testing.T) {
	t.Parallel()

	svc := newFakeService()
	client := dial(t, svc)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	stream, err := client.Watch(ctx, new(pb.WatchRequest))
	require.NoError(t, err)

	at := time.Date(2026, time.October, 19, 9, 30, 0, 0, time.UTC)
	svc.events <- events.Event{Type: events.TypeRinging, ScheduleID: 3, At: at}

	close(svc.events)

	event, err := stream.Recv()
	require.NoError(t, err)
	require.Equal(t, string(events.TypeRinging), event.Type)
	require.Equal(t, int64(3), event.GetScheduleId())
	require.Equal(t, at, event.At.AsTime())
	require.Nil(t, event.NextTrigger)

	_, err = stream.Recv()
	require.Error(t, err)
}

// TestFromProtoSchedule_Defaults treats a missing auto-dismiss as none.
func TestFromProtoSchedule_Defaults(t *testing.T) {
	t.Parallel()

	wire := workHours()
	wire.AutoDismiss = nil
	wire.Days = nil

	schedule, err := FromProtoSchedule(wire)
	require.NoError(t, err)
	require.Zero(t, schedule.AutoDismiss)
	require.True(t, schedule.ActiveDays.IsEmpty())
	require.Equal(t, 9*60, schedule.StartMinute)

	back := ToProtoSchedule(schedule, false)
	require.Nil(t, back.AutoDismiss)
	require.Equal(t, "17:00", back.End)
}
