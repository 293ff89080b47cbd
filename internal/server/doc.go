// Package server serves the portfolio site.
//
// Pages are parsed once from the embedded templates and rendered per
// request. The homepage document is shared: each shuffle writes the next
// cat picture into its image element, so later page loads show the most
// recent choice.
//
// # Endpoints
//
//   - GET / - Homepage with the current cat picture
//   - GET /about-me, /portfolio, /services, /contact - Static pages
//   - GET /static/... - Embedded images, script and stylesheet
//   - POST /shuffle-cats - Advance to the next cat picture, returns its path
//
// # Rate limiting
//
// Shuffles are limited per client IP with a sliding window. Clients over
// the limit get 429 with a Retry-After header.
package server
