// Package server exposes the color mixer over a small REST API.
//
// # Routes
//
//   - POST   /api/add-color      add colors: {color, quantity?, shade?}
//   - GET    /api/current-color  the current mix as {color, rgb}
//   - DELETE /api/clear          empty the mixer (POST accepted too)
//   - GET    /api/history        all saved mix records, insertion order
//   - POST   /api/history        save the current mix to the history
//   - GET    /api/status         liveness probe with the current count
//   - GET    /api/swatch         PNG preview, ?width= and ?height=
//   - /                          static front-end files
//
// # Errors
//
// Failures produce {"error": "..."}. User-caused errors (unsupported or
// malformed colors, capacity exceeded, empty mixer) map to 400; anything
// internal maps to 500 and is logged. Errors are detected before any state
// mutation, so a failed request never partially applies.
//
// # State
//
// All state lives in one mixer.Mixer shared by every request and is lost on
// restart. The mixer serializes access internally; handlers hold no locks of
// their own.
package server
