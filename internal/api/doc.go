// Package api provides the HTTP handlers for the ToToDo API: public
// authentication endpoints and the task CRUD endpoints that may sit behind
// the bearer-token gate depending on deployment configuration.
package api
