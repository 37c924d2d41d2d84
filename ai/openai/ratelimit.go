// Copyright 2026 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package openai

import (
	"context"

	"golang.org/x/time/rate"
)

// requestLimiter throttles calls to the chat API with a token bucket.
// Hosted free tiers reject bursts, local servers queue them.
type requestLimiter struct {
	limiter *rate.Limiter
}

// newRequestLimiter returns a limiter allowing rps requests per second with
// the given burst. A non-positive rps disables limiting.
func newRequestLimiter(rps float64, burst int) *requestLimiter {
	if rps <= 0 {
		return &requestLimiter{limiter: rate.NewLimiter(rate.Inf, 0)}
	}
	if burst < 1 {
		burst = 1
	}
	return &requestLimiter{limiter: rate.NewLimiter(rate.Limit(rps), burst)}
}

// Wait blocks until a request may be sent or ctx is done.
func (r *requestLimiter) Wait(ctx context.Context) error {
	return r.limiter.Wait(ctx)
}

// Allow reports whether a request may be sent right now.
func (r *requestLimiter) Allow() bool {
	return r.limiter.Allow()
}
