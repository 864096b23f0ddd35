// File: database/repository/booking/bookingMongoQueries.go
package bookingRepo

import (
	"fmt"
	"time"

	"shareit/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// roleField maps the listing role to the booking field the subject id is
// matched against.
func roleField(role models.Role) string {
	if role == models.RoleOwner {
		return "owner_id"
	}
	return "booker_id"
}

// stateFilter translates a query-time booking state into a Mongo predicate,
// with all time comparisons against the now sampled by the caller.
func stateFilter(state models.BookingState, now time.Time) bson.M {
	switch state {
	case models.StateCurrent:
		return bson.M{"start": bson.M{"$lt": now}, "end": bson.M{"$gt": now}}
	case models.StatePast:
		return bson.M{"end": bson.M{"$lt": now}}
	case models.StateFuture:
		return bson.M{"start": bson.M{"$gt": now}}
	case models.StateWaiting:
		return bson.M{"status": models.StatusWaiting}
	case models.StateRejected:
		return bson.M{"status": models.StatusRejected}
	default: // ALL
		return bson.M{}
	}
}

// ListBySubject returns one page of bookings sorted descending by start.
func (r *MongoBookingRepo) ListBySubject(subjectID int64, role models.Role, state models.BookingState, now time.Time, page Page) ([]models.Booking, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := stateFilter(state, now)
	filter[roleField(role)] = subjectID

	opts := options.Find().
		SetSort(bson.D{{Key: "start", Value: -1}}).
		SetSkip(int64(page.Index() * page.Size)).
		SetLimit(int64(page.Size))

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var out []models.Booking
	for cursor.Next(ctx) {
		var b models.Booking
		if err := cursor.Decode(&b); err != nil {
			return nil, fmt.Errorf("failed to decode booking: %w", err)
		}
		out = append(out, b)
	}
	return out, cursor.Err()
}

// FindLastByItemIDs picks, per item, the APPROVED booking already started
// with the latest end.
func (r *MongoBookingRepo) FindLastByItemIDs(itemIDs []int64, now time.Time) (map[int64]models.Booking, error) {
	return r.extremalByItem(itemIDs,
		bson.M{"start": bson.M{"$lt": now}},
		bson.D{{Key: "item_id", Value: 1}, {Key: "end", Value: -1}},
	)
}

// FindNextByItemIDs picks, per item, the APPROVED booking not yet started
// with the earliest start.
func (r *MongoBookingRepo) FindNextByItemIDs(itemIDs []int64, now time.Time) (map[int64]models.Booking, error) {
	return r.extremalByItem(itemIDs,
		bson.M{"start": bson.M{"$gt": now}},
		bson.D{{Key: "item_id", Value: 1}, {Key: "start", Value: 1}},
	)
}

// extremalByItem groups APPROVED bookings by item and keeps the first
// document per item under the given sort.
func (r *MongoBookingRepo) extremalByItem(itemIDs []int64, timeCond bson.M, sort bson.D) (map[int64]models.Booking, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	match := bson.M{
		"item_id": bson.M{"$in": itemIDs},
		"status":  models.StatusApproved,
	}
	for k, v := range timeCond {
		match[k] = v
	}

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: match}},
		bson.D{{Key: "$sort", Value: sort}},
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$item_id"},
			{Key: "doc", Value: bson.D{{Key: "$first", Value: "$$ROOT"}}},
		}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate bookings by item: %w", err)
	}
	defer cursor.Close(ctx)

	out := make(map[int64]models.Booking)
	for cursor.Next(ctx) {
		var row struct {
			ItemID int64          `bson:"_id"`
			Doc    models.Booking `bson:"doc"`
		}
		if err := cursor.Decode(&row); err != nil {
			return nil, fmt.Errorf("failed to decode grouped booking: %w", err)
		}
		out[row.ItemID] = row.Doc
	}
	return out, cursor.Err()
}
