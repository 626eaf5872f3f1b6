package service

import (
	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/events"
	"alcyxob/fitness-tracker/internal/metrics"
	"alcyxob/fitness-tracker/internal/readiness"
	"alcyxob/fitness-tracker/internal/repository"
	"alcyxob/fitness-tracker/internal/storage"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrInvalidCheckIn   = errors.New("invalid readiness check-in")
	ErrCheckInNotFound  = errors.New("check-in not found")
	ErrSnapshotDisabled = errors.New("check-in snapshots are disabled")
	ErrNoSnapshot       = errors.New("check-in has no snapshot")
)

const maxNotesLength = 1000

// CheckInResult is a stored check-in together with the derived recommendation.
type CheckInResult struct {
	CheckIn *domain.CheckIn  `json:"checkIn"`
	Result  readiness.Result `json:"result"`
}

type ReadinessService interface {
	// Evaluate scores factors without storing anything.
	Evaluate(factors []readiness.Factor) (readiness.Result, error)
	SubmitCheckIn(ctx context.Context, userID primitive.ObjectID, factors []readiness.Factor, notes string) (*CheckInResult, error)
	SnapshotURL(ctx context.Context, userID, checkInID primitive.ObjectID) (string, error)
}

// SnapshotOptions controls exporting check-ins to object storage. A nil Storage disables it.
type SnapshotOptions struct {
	Storage       storage.ObjectStorage
	Prefix        string
	PresignExpiry time.Duration
}

type readinessService struct {
	checkInRepo repository.CheckInRepository
	publisher   events.Publisher
	snapshots   SnapshotOptions
}

func NewReadinessService(checkInRepo repository.CheckInRepository, publisher events.Publisher, snapshots SnapshotOptions) ReadinessService {
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}
	snapshots.Prefix = strings.Trim(snapshots.Prefix, "/")
	if snapshots.Prefix == "" {
		snapshots.Prefix = "checkins"
	}
	return &readinessService{
		checkInRepo: checkInRepo,
		publisher:   publisher,
		snapshots:   snapshots,
	}
}

func (s *readinessService) Evaluate(factors []readiness.Factor) (readiness.Result, error) {
	result, err := readiness.Evaluate(factors)
	if err != nil {
		return readiness.Result{}, fmt.Errorf("%w: %v", ErrInvalidCheckIn, err)
	}
	return result, nil
}

// SubmitCheckIn scores and stores one check-in. Storing the snapshot is best
// effort: failures are logged and the check-in is still returned.
func (s *readinessService) SubmitCheckIn(ctx context.Context, userID primitive.ObjectID, factors []readiness.Factor, notes string) (*CheckInResult, error) {
	notes = strings.TrimSpace(notes)
	if len(notes) > maxNotesLength {
		return nil, fmt.Errorf("%w: notes exceed %d characters", ErrInvalidCheckIn, maxNotesLength)
	}

	ordered, err := readiness.Canonical(factors)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCheckIn, err)
	}
	result, err := s.Evaluate(ordered)
	if err != nil {
		return nil, err
	}

	checkIn := &domain.CheckIn{
		UserID:    userID,
		Factors:   ordered,
		Score:     result.Score,
		Level:     result.Level,
		Tier:      result.Recommendation.Tier,
		Notes:     notes,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := s.checkInRepo.Create(ctx, checkIn); err != nil {
		return nil, fmt.Errorf("failed to store check-in: %w", err)
	}

	metrics.CheckInsTotal.WithLabelValues(string(result.Level)).Inc()
	metrics.ReadinessScore.Observe(float64(result.Score))

	if s.snapshots.Storage != nil {
		s.writeSnapshot(ctx, checkIn, result)
	}

	events.PublishAsync(s.publisher, events.CheckInRecorded, userID.Hex(), checkIn)

	return &CheckInResult{CheckIn: checkIn, Result: result}, nil
}

func (s *readinessService) snapshotKey(checkIn *domain.CheckIn) string {
	return path.Join(s.snapshots.Prefix, checkIn.UserID.Hex(), checkIn.ID.Hex()+".json")
}

func (s *readinessService) writeSnapshot(ctx context.Context, checkIn *domain.CheckIn, result readiness.Result) {
	key := s.snapshotKey(checkIn)
	body, err := json.Marshal(CheckInResult{CheckIn: checkIn, Result: result})
	if err != nil {
		log.Errorf("failed to encode snapshot of check-in %s: %v", checkIn.ID.Hex(), err)
		return
	}
	if err := s.snapshots.Storage.PutObject(ctx, key, "application/json", body); err != nil {
		log.Warnf("snapshot of check-in %s not stored: %v", checkIn.ID.Hex(), err)
		return
	}
	if err := s.checkInRepo.SetSnapshotKey(ctx, checkIn.ID, key); err != nil {
		log.Warnf("snapshot key of check-in %s not recorded: %v", checkIn.ID.Hex(), err)
		// Orphaned object, nothing points at it anymore.
		if delErr := s.snapshots.Storage.DeleteObject(ctx, key); delErr != nil {
			log.Warnf("orphaned snapshot %s left behind: %v", key, delErr)
		}
		return
	}
	checkIn.SnapshotKey = key
}

// SnapshotURL returns a presigned download URL for a check-in's snapshot.
func (s *readinessService) SnapshotURL(ctx context.Context, userID, checkInID primitive.ObjectID) (string, error) {
	if s.snapshots.Storage == nil {
		return "", ErrSnapshotDisabled
	}
	checkIn, err := s.checkInRepo.GetByID(ctx, checkInID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrCheckInNotFound
		}
		return "", err
	}
	if checkIn.SnapshotKey == "" {
		return "", ErrNoSnapshot
	}
	return s.snapshots.Storage.GeneratePresignedDownloadURL(ctx, checkIn.SnapshotKey, s.snapshots.PresignExpiry)
}
