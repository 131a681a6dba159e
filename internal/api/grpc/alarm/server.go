package alarm

import (
	"context"
	"errors"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	domain "github.com/oshokin/interval-alarm/internal/domain/alarm"
	"github.com/oshokin/interval-alarm/internal/events"
	"github.com/oshokin/interval-alarm/internal/logger"
	pb "github.com/oshokin/interval-alarm/internal/pb/v1"
	repository "github.com/oshokin/interval-alarm/internal/repository/schedule"
)

// Service abstracts the business operations the transport layer depends on.
type Service interface {
	List(ctx context.Context) ([]*domain.Schedule, error)
	Get(ctx context.Context, id int64) (*domain.Schedule, error)
	Save(ctx context.Context, edit *domain.Schedule) (*domain.Result, error)
	SetEnabled(ctx context.Context, id int64, enabled bool) (*domain.Result, error)
	Delete(ctx context.Context, id int64) (*domain.Result, error)
	Dismiss(ctx context.Context, id int64) bool
	IsRinging(id int64) bool
	Subscribe(ctx context.Context) (<-chan events.Event, error)
}

// Server implements the IntervalAlarmService gRPC API.
type Server struct {
	pb.UnimplementedIntervalAlarmServiceServer

	// service provides the business logic.
	service Service
}

// NewServer wires the provided service implementation into a gRPC handler.
func NewServer(service Service) *Server {
	return &Server{
		service: service,
	}
}

// ListSchedules returns every schedule.
func (s *Server) ListSchedules(ctx context.Context, _ *pb.ListSchedulesRequest) (*pb.ListSchedulesResponse, error) {
	schedules, err := s.service.List(ctx)
	if err != nil {
		return nil, toStatus(ctx, err)
	}

	response := &pb.ListSchedulesResponse{
		Schedules: make([]*pb.Schedule, 0, len(schedules)),
	}

	for _, schedule := range schedules {
		response.Schedules = append(response.Schedules, ToProtoSchedule(schedule, s.service.IsRinging(schedule.ID)))
	}

	return response, nil
}

// GetSchedule returns one schedule and its lifecycle state.
func (s *Server) GetSchedule(ctx context.Context, req *pb.GetScheduleRequest) (*pb.ScheduleResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	if err := validateID(req.GetId()); err != nil {
		return nil, err
	}

	schedule, err := s.service.Get(ctx, req.GetId())
	if err != nil {
		return nil, toStatus(ctx, err)
	}

	return &pb.ScheduleResponse{
		Schedule: ToProtoSchedule(schedule, s.service.IsRinging(schedule.ID)),
		Status:   string(schedule.State()),
	}, nil
}

// SaveSchedule creates or replaces a schedule and re-arms it.
func (s *Server) SaveSchedule(ctx context.Context, req *pb.SaveScheduleRequest) (*pb.ScheduleResponse, error) {
	if req.GetSchedule() == nil {
		return nil, status.Error(codes.InvalidArgument, "schedule is required")
	}

	if req.GetSchedule().GetId() < 0 {
		return nil, status.Error(codes.InvalidArgument, "schedule id must not be negative")
	}

	edit, err := FromProtoSchedule(req.GetSchedule())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	result, err := s.service.Save(ctx, edit)
	if err != nil {
		return nil, toStatus(ctx, err)
	}

	return s.toResponse(result), nil
}

// SetEnabled flips the enabled switch.
func (s *Server) SetEnabled(ctx context.Context, req *pb.SetEnabledRequest) (*pb.ScheduleResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	if err := validateID(req.GetId()); err != nil {
		return nil, err
	}

	result, err := s.service.SetEnabled(ctx, req.GetId(), req.GetEnabled())
	if err != nil {
		return nil, toStatus(ctx, err)
	}

	return s.toResponse(result), nil
}

// DeleteSchedule cancels and removes a schedule.
func (s *Server) DeleteSchedule(ctx context.Context, req *pb.DeleteScheduleRequest) (*pb.DeleteScheduleResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	if err := validateID(req.GetId()); err != nil {
		return nil, err
	}

	result, err := s.service.Delete(ctx, req.GetId())
	if err != nil {
		return nil, toStatus(ctx, err)
	}

	return &pb.DeleteScheduleResponse{Status: string(result.Status)}, nil
}

// Dismiss ends a ringing session.
func (s *Server) Dismiss(ctx context.Context, req *pb.DismissRequest) (*pb.DismissResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	if err := validateID(req.GetId()); err != nil {
		return nil, err
	}

	return &pb.DismissResponse{Dismissed: s.service.Dismiss(ctx, req.GetId())}, nil
}

// Watch streams events until the client goes away.
func (s *Server) Watch(_ *pb.WatchRequest, stream grpc.ServerStreamingServer[pb.Event]) error {
	ctx := stream.Context()

	subscription, err := s.service.Subscribe(ctx)
	if err != nil {
		return toStatus(ctx, err)
	}

	logger.Debug(ctx, "Watch stream opened")

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-subscription:
			if !ok {
				return nil
			}

			if err = stream.Send(ToProtoEvent(event)); err != nil {
				return err
			}
		}
	}
}

// toResponse converts a lifecycle result.
func (s *Server) toResponse(result *domain.Result) *pb.ScheduleResponse {
	response := &pb.ScheduleResponse{Status: string(result.Status)}

	if result.Schedule != nil {
		response.Schedule = ToProtoSchedule(result.Schedule, s.service.IsRinging(result.Schedule.ID))
	}

	return response
}

// validateID rejects ids storage never assigns.
func validateID(id int64) error {
	if id <= 0 {
		return status.Error(codes.InvalidArgument, "schedule id must be positive")
	}

	return nil
}

// toStatus maps service errors to gRPC status errors.
func toStatus(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, domain.ErrInvalidSchedule):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return status.FromContextError(err).Err()
	default:
		logger.ErrorKV(ctx, "Request failed", "error", err)

		return status.Error(codes.Internal, "internal error")
	}
}
