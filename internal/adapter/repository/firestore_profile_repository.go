package repository

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"gigmarket/internal/domain/entity"
	"gigmarket/internal/domain/repository"
	"gigmarket/pkg/errors"
	"gigmarket/pkg/logger"
)

const (
	sellersCollection = "Sellers"
	buyersCollection  = "Buyers"
)

// CollectionFor maps a role to the collection holding its profiles.
func CollectionFor(role entity.Role) string {
	if role == entity.RoleBuyer {
		return buyersCollection
	}
	return sellersCollection
}

type firestoreProfileRepository struct {
	client *firestore.Client
}

func NewFirestoreProfileRepository(client *firestore.Client) repository.ProfileRepository {
	return &firestoreProfileRepository{
		client: client,
	}
}

func (r *firestoreProfileRepository) doc(role entity.Role, uid string) *firestore.DocumentRef {
	return r.client.Collection(CollectionFor(role)).Doc(uid)
}

func (r *firestoreProfileRepository) Get(ctx context.Context, role entity.Role, uid string) (*entity.Profile, error) {
	snap, err := r.doc(role, uid).Get(ctx)
	if err != nil {
		if IsNotFound(err) {
			return nil, errors.NotFound("Profile", err)
		}
		return nil, errors.ServiceUnavailable("Failed to load profile", err)
	}

	profile, err := decodeProfile(snap, role)
	if err != nil {
		return nil, errors.Internal("Failed to parse profile data", err)
	}

	return profile, nil
}

func decodeProfile(snap *firestore.DocumentSnapshot, role entity.Role) (*entity.Profile, error) {
	var profile entity.Profile
	if err := snap.DataTo(&profile); err != nil {
		return nil, err
	}
	applyReadDefaults(&profile, snap.Data())
	profile.ID = snap.Ref.ID
	profile.Role = role
	return &profile, nil
}

// applyReadDefaults treats a document without a visible field as visible.
func applyReadDefaults(p *entity.Profile, data map[string]interface{}) {
	if _, ok := data["visible"]; !ok {
		p.Visible = true
	}
}

func (r *firestoreProfileRepository) Exists(ctx context.Context, role entity.Role, uid string) (bool, error) {
	snap, err := r.doc(role, uid).Get(ctx)
	if err != nil {
		if IsNotFound(err) {
			return false, nil
		}
		return false, errors.ServiceUnavailable("Failed to check profile", err)
	}
	return snap.Exists(), nil
}

func (r *firestoreProfileRepository) Merge(ctx context.Context, role entity.Role, uid string, update entity.ProfileUpdate) error {
	data := profileUpdateData(update)
	if len(data) == 0 {
		return nil
	}

	logger.Debug("Merging profile %s/%s fields: %v", CollectionFor(role), uid, fieldNames(data))

	if _, err := r.doc(role, uid).Set(ctx, data, firestore.MergeAll); err != nil {
		return errors.ServiceUnavailable("Could not save gig", err)
	}
	return nil
}

func (r *firestoreProfileRepository) Delete(ctx context.Context, role entity.Role, uid string) error {
	if _, err := r.doc(role, uid).Delete(ctx); err != nil {
		return errors.ServiceUnavailable("Failed to delete gig", err)
	}
	return nil
}

func (r *firestoreProfileRepository) FindByCity(ctx context.Context, role entity.Role, city string) ([]*entity.Profile, error) {
	iter := r.client.Collection(CollectionFor(role)).Where("location.city", "==", city).Documents(ctx)
	defer iter.Stop()

	profiles := make([]*entity.Profile, 0)
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.ServiceUnavailable("Failed to search gigs", err)
		}

		profile, err := decodeProfile(snap, role)
		if err != nil {
			logger.Warn("Skipping unreadable profile %s: %v", snap.Ref.ID, err)
			continue
		}
		profiles = append(profiles, profile)
	}

	return profiles, nil
}

// profileUpdateData flattens an update into the map form MergeAll expects.
// Nested location keys merge individually.
func profileUpdateData(u entity.ProfileUpdate) map[string]interface{} {
	data := make(map[string]interface{})
	if u.Name != nil {
		data["name"] = *u.Name
	}
	if u.Age != nil {
		data["age"] = *u.Age
	}
	if u.Price != nil {
		data["price"] = *u.Price
	}
	if u.WorkingDays != nil {
		data["workingDays"] = *u.WorkingDays
	}
	if u.Category != nil {
		data["category"] = string(*u.Category)
	}
	if u.Visible != nil {
		data["visible"] = *u.Visible
	}
	if u.Location != nil {
		data["location"] = map[string]interface{}{
			"city": u.Location.City,
			"lat":  u.Location.Lat,
			"lon":  u.Location.Lon,
		}
	}
	return data
}

func fieldNames(data map[string]interface{}) string {
	names := make([]string, 0, len(data))
	for k := range data {
		names = append(names, k)
	}
	return fmt.Sprint(names)
}
