package obs

import (
	"context"
	"log"
	"time"
)

type ctxKey string

const RequestIDKey ctxKey = "req_id"

// Time logs the duration of an operation when the returned func runs,
// including the error (if any) the operation finished with. Use with a
// named error return:
//
//	defer obs.Time(ctx, "routes.store.SaveRoute")(&err)
func Time(ctx context.Context, name string) func(errp *error) {
	start := time.Now()

	reqID, _ := ctx.Value(RequestIDKey).(string)

	return func(errp *error) {
		dur := time.Since(start).Milliseconds()

		if errp != nil && *errp != nil {
			log.Printf("req_id=%s op=%s dur=%dms err=%v", reqID, name, dur, *errp)
			return
		}
		log.Printf("req_id=%s op=%s dur=%dms", reqID, name, dur)
	}
}
