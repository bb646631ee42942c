package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/pvpit/gatepass-api/internal/models"
)

// ErrNotFound is returned when no document exists for the given ID.
var ErrNotFound = errors.New("gate pass not found")

// storeObserver receives per-operation store timings. Satisfied by the
// metrics service; nil disables observation.
type storeObserver interface {
	ObserveStoreOperation(op string, duration time.Duration)
}

// GatePassRepository persists gate passes in a single Firestore collection.
// Documents are keyed by the generated pass ID; every read is a fresh query,
// there is no caching or secondary index.
type GatePassRepository struct {
	client     *firestore.Client
	collection string
	observer   storeObserver
}

// NewGatePassRepository constructs a GatePassRepository.
func NewGatePassRepository(client *firestore.Client, collection string, observer storeObserver) *GatePassRepository {
	return &GatePassRepository{client: client, collection: collection, observer: observer}
}

func (r *GatePassRepository) col() *firestore.CollectionRef {
	return r.client.Collection(r.collection)
}

func (r *GatePassRepository) observe(op string, start time.Time) {
	if r.observer != nil {
		r.observer.ObserveStoreOperation(op, time.Since(start))
	}
}

// Create stores a new gate pass document keyed by its ID.
func (r *GatePassRepository) Create(ctx context.Context, pass *models.GatePass) error {
	defer r.observe("create", time.Now())
	if _, err := r.col().Doc(pass.ID).Set(ctx, pass); err != nil {
		return fmt.Errorf("create gate pass: %w", err)
	}
	return nil
}

// List returns all passes, restricted to one pass type when typeFilter is a
// recognised type. Results are sorted by timestamp descending in memory;
// store-level ordering is deliberately not relied on, so the repository
// stays portable across backends that order differently.
func (r *GatePassRepository) List(ctx context.Context, typeFilter string) ([]models.GatePass, error) {
	defer r.observe("list", time.Now())
	q := r.col().Query
	if models.ValidPassType(typeFilter) {
		q = q.Where("pass_type", "==", typeFilter)
	}
	passes, err := r.stream(ctx, q)
	if err != nil {
		return nil, err
	}
	sortByTimestampDesc(passes)
	return passes, nil
}

// FindByID fetches one pass by document ID.
func (r *GatePassRepository) FindByID(ctx context.Context, id string) (*models.GatePass, error) {
	defer r.observe("get", time.Now())
	doc, err := r.col().Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get gate pass %s: %w", id, err)
	}
	pass, err := decode(doc)
	if err != nil {
		return nil, err
	}
	return &pass, nil
}

// FindByPRN returns every pass filed under the given PRN, newest first. No
// match is an empty slice, not an error.
func (r *GatePassRepository) FindByPRN(ctx context.Context, prn string) ([]models.GatePass, error) {
	defer r.observe("list_by_prn", time.Now())
	q := r.col().Query.Where("prn_number", "==", prn)
	passes, err := r.stream(ctx, q)
	if err != nil {
		return nil, err
	}
	sortByTimestampDesc(passes)
	return passes, nil
}

// UpdateStatus applies the approval decision. The rejection reason field is
// only touched when the update carries one, so approving never leaves a
// stale reason behind on the wire representation of an approval.
func (r *GatePassRepository) UpdateStatus(ctx context.Context, id string, update models.StatusUpdate) error {
	defer r.observe("update", time.Now())
	ref := r.col().Doc(id)
	if _, err := ref.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return ErrNotFound
		}
		return fmt.Errorf("get gate pass %s: %w", id, err)
	}

	updates := []firestore.Update{
		{Path: "status", Value: update.Status},
		{Path: "updated_at", Value: update.UpdatedAt},
	}
	if update.SetRejection {
		updates = append(updates, firestore.Update{Path: "rejection_reason", Value: update.RejectionReason})
	}

	if _, err := ref.Update(ctx, updates); err != nil {
		return fmt.Errorf("update gate pass %s: %w", id, err)
	}
	return nil
}

// stream drains a query. Documents that fail to decode are skipped; an
// iterator failure returns whatever was collected plus the error, callers
// on list paths degrade that to an empty result.
func (r *GatePassRepository) stream(ctx context.Context, q firestore.Query) ([]models.GatePass, error) {
	iter := q.Documents(ctx)
	defer iter.Stop()

	var passes []models.GatePass
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			return passes, nil
		}
		if err != nil {
			return passes, fmt.Errorf("stream gate passes: %w", err)
		}
		pass, err := decode(doc)
		if err != nil {
			continue
		}
		passes = append(passes, pass)
	}
}

func decode(doc *firestore.DocumentSnapshot) (models.GatePass, error) {
	var pass models.GatePass
	if err := doc.DataTo(&pass); err != nil {
		return models.GatePass{}, fmt.Errorf("decode gate pass %s: %w", doc.Ref.ID, err)
	}
	pass.ID = doc.Ref.ID
	return pass, nil
}

// Timestamps are RFC 3339 strings, so lexicographic order is chronological.
func sortByTimestampDesc(passes []models.GatePass) {
	sort.SliceStable(passes, func(i, j int) bool {
		return passes[i].Timestamp > passes[j].Timestamp
	})
}
