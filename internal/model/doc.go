package model

// Package model defines the domain data structures shared by the controller, its
// collaborators and the display surfaces: clip requests, timestamps, task
// snapshots and status enums. Requests are built at submission time and never
// persisted.
