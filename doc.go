// Package main provides the entry point for the Novera agency site backend.
// It initializes and runs a web server using the Fiber framework exposing a
// JSON API for blog content, contact form submissions and newsletter
// subscriptions. Content is kept in an in-process store by default, with an
// optional gorm-backed relational store for persistent deployments.
package main
