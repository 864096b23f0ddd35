package bookingRepo

import (
	"fmt"
	"time"

	"shareit/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Decide flips a WAITING booking's status inside a Mongo transaction. The
// overlap re-check and the status write must see the same storage state,
// otherwise two concurrent approvals of overlapping WAITING bookings could
// both pass the pre-check and commit.
func (r *MongoBookingRepo) Decide(id int64, approve bool) (*models.Booking, error) {
	ctx, cancel := newContext(15 * time.Second)
	defer cancel()

	client := r.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return nil, fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	var decided models.Booking

	txnFn := func(sc mongo.SessionContext) error {
		var b models.Booking
		if err := r.coll.FindOne(sc, bson.M{"id": id}).Decode(&b); err != nil {
			if err == mongo.ErrNoDocuments {
				return ErrNotFound
			}
			return fmt.Errorf("failed to fetch booking: %w", err)
		}

		next := models.StatusRejected
		if approve {
			next = models.StatusApproved
		}
		if !b.Status.CanTransition(next) {
			return ErrAlreadyDecided
		}

		if approve {
			count, err := r.coll.CountDocuments(sc, overlapFilter(b.ItemID, b.Start, b.End))
			if err != nil {
				return fmt.Errorf("overlap re-check failed: %w", err)
			}
			if count > 0 {
				return ErrOverlap
			}
		}

		res, err := r.coll.UpdateOne(sc,
			bson.M{"id": id, "status": models.StatusWaiting},
			bson.M{"$set": bson.M{"status": next}},
		)
		if err != nil {
			return fmt.Errorf("failed to update booking status: %w", err)
		}
		if res.MatchedCount == 0 {
			return ErrAlreadyDecided
		}

		b.Status = next
		decided = b
		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		return nil, err
	}

	return &decided, nil
}
