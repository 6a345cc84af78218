// Package domain contains the core business entities of the task tracker
// (users and tasks), independent of any specific infrastructure or delivery
// mechanism.
package domain
