package schedule

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/durationpb"
	"google.golang.org/protobuf/types/known/timestamppb"

	domain "github.com/oshokin/interval-alarm/internal/domain/alarm"
	pb "github.com/oshokin/interval-alarm/internal/pb/v1"
)

// filePermissions restricts the schedule document to its owner.
const filePermissions = 0o600

// document is the decoded content of the schedules file.
type document struct {
	// NextID is the id handed to the next created schedule.
	NextID int64
	// Schedules are all stored schedules.
	Schedules []*domain.Schedule
}

// FileRepository persists schedules to a JSON file on disk.
// The file holds a pb.ScheduleStore in protobuf JSON (protojson).
// Every call reads the file, so external edits are picked up.
type FileRepository struct {
	// path is the filesystem location of the JSON document.
	path string
	// mu serializes access to the document.
	mu sync.Mutex
}

// NewFileRepository creates a repository that reads/writes JSON at the provided path.
func NewFileRepository(path string) *FileRepository {
	return &FileRepository{
		path: filepath.Clean(path),
	}
}

// Load reads one schedule.
func (r *FileRepository) Load(_ context.Context, id int64) (*domain.Schedule, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.read()
	if err != nil {
		return nil, err
	}

	if i := doc.index(id); i >= 0 {
		return doc.Schedules[i].Clone(), nil
	}

	return nil, ErrNotFound
}

// LoadAll reads every schedule ordered by id.
func (r *FileRepository) LoadAll(_ context.Context) ([]*domain.Schedule, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.read()
	if err != nil {
		return nil, err
	}

	result := make([]*domain.Schedule, 0, len(doc.Schedules))
	for _, s := range doc.Schedules {
		result = append(result, s.Clone())
	}

	return result, nil
}

// Create assigns the next id and appends the schedule.
func (r *FileRepository) Create(_ context.Context, schedule *domain.Schedule) (*domain.Schedule, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.read()
	if err != nil {
		return nil, err
	}

	created := schedule.Clone()
	created.ID = doc.NextID
	doc.NextID++
	doc.Schedules = append(doc.Schedules, created)

	if err = r.write(doc); err != nil {
		return nil, err
	}

	return created.Clone(), nil
}

// Save overwrites an existing schedule.
func (r *FileRepository) Save(_ context.Context, schedule *domain.Schedule) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.read()
	if err != nil {
		return err
	}

	i := doc.index(schedule.ID)
	if i < 0 {
		return ErrNotFound
	}

	doc.Schedules[i] = schedule.Clone()

	return r.write(doc)
}

// Delete removes a schedule if present.
func (r *FileRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.read()
	if err != nil {
		return err
	}

	i := doc.index(id)
	if i < 0 {
		return nil
	}

	doc.Schedules = append(doc.Schedules[:i], doc.Schedules[i+1:]...)

	return r.write(doc)
}

// Close is a no-op; the file is not kept open.
func (*FileRepository) Close() error {
	return nil
}

// read loads the document; a missing file is an empty document.
func (r *FileRepository) read() (*document, error) {
	doc := &document{NextID: 1}

	contents, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return doc, nil
		}

		return nil, fmt.Errorf("read schedules file: %w", err)
	}

	var store pb.ScheduleStore
	if err = protojson.Unmarshal(contents, &store); err != nil {
		return nil, fmt.Errorf("decode schedules file: %w", err)
	}

	doc.NextID = max(store.GetNextId(), 1)

	for _, protoSchedule := range store.GetSchedules() {
		schedule, convErr := fromProto(protoSchedule)
		if convErr != nil {
			return nil, fmt.Errorf("decode schedule %d: %w", protoSchedule.GetId(), convErr)
		}

		doc.Schedules = append(doc.Schedules, schedule)
	}

	sort.Slice(doc.Schedules, func(i, j int) bool {
		return doc.Schedules[i].ID < doc.Schedules[j].ID
	})

	// Never hand out an id that is still in use, even if next_id was edited by hand.
	for _, s := range doc.Schedules {
		if s.ID >= doc.NextID {
			doc.NextID = s.ID + 1
		}
	}

	return doc, nil
}

// write replaces the document atomically via a temporary file.
func (r *FileRepository) write(doc *document) error {
	store := &pb.ScheduleStore{
		NextId:    doc.NextID,
		Schedules: make([]*pb.Schedule, 0, len(doc.Schedules)),
	}

	for _, schedule := range doc.Schedules {
		store.Schedules = append(store.Schedules, toProto(schedule))
	}

	marshalOptions := protojson.MarshalOptions{
		Multiline:       true,
		EmitUnpopulated: true,
	}

	data, err := marshalOptions.Marshal(store)
	if err != nil {
		return fmt.Errorf("encode schedules: %w", err)
	}

	tmp := r.path + ".tmp"
	if err = os.WriteFile(tmp, data, filePermissions); err != nil {
		return fmt.Errorf("write schedules file: %w", err)
	}

	if err = os.Rename(tmp, r.path); err != nil {
		return fmt.Errorf("replace schedules file: %w", err)
	}

	return nil
}

// index returns the position of id in the document or -1.
func (d *document) index(id int64) int {
	for i, s := range d.Schedules {
		if s.ID == id {
			return i
		}
	}

	return -1
}

// fromProto converts a stored schedule into the domain model.
func fromProto(protoSchedule *pb.Schedule) (*domain.Schedule, error) {
	start, err := domain.ParseClock(protoSchedule.GetStart())
	if err != nil {
		return nil, fmt.Errorf("start: %w", err)
	}

	end, err := domain.ParseClock(protoSchedule.GetEnd())
	if err != nil {
		return nil, fmt.Errorf("end: %w", err)
	}

	days, err := domain.WeekdaysFromNames(protoSchedule.GetDays())
	if err != nil {
		return nil, err
	}

	var nextTrigger time.Time
	if ts := protoSchedule.GetNextTrigger(); ts != nil {
		nextTrigger = ts.AsTime()
	}

	var autoDismiss time.Duration
	if d := protoSchedule.GetAutoDismiss(); d != nil {
		autoDismiss = d.AsDuration()
	}

	return &domain.Schedule{
		ID:              protoSchedule.GetId(),
		Label:           protoSchedule.GetLabel(),
		StartMinute:     start,
		EndMinute:       end,
		IntervalMinutes: int(protoSchedule.GetIntervalMinutes()),
		ActiveDays:      days,
		Enabled:         protoSchedule.GetEnabled(),
		NextTrigger:     nextTrigger,
		AutoDismiss:     autoDismiss,
	}, nil
}

// toProto converts the domain model into its stored form.
func toProto(schedule *domain.Schedule) *pb.Schedule {
	var nextTrigger *timestamppb.Timestamp
	if !schedule.NextTrigger.IsZero() {
		nextTrigger = timestamppb.New(schedule.NextTrigger)
	}

	var autoDismiss *durationpb.Duration
	if schedule.AutoDismiss > 0 {
		autoDismiss = durationpb.New(schedule.AutoDismiss)
	}

	return &pb.Schedule{
		Id:              schedule.ID,
		Label:           schedule.Label,
		Start:           domain.FormatClock(schedule.StartMinute),
		End:             domain.FormatClock(schedule.EndMinute),
		IntervalMinutes: int32(schedule.IntervalMinutes), //nolint:gosec // Intervals enter through the int32 wire field.
		Days:            schedule.ActiveDays.Names(),
		Enabled:         schedule.Enabled,
		NextTrigger:     nextTrigger,
		AutoDismiss:     autoDismiss,
	}
}
