// Package courses manages the course catalog: records live in cursos.json
// and every saved course is rendered to a static HTML page under the course
// pages directory. The JSON store is the master copy; pages are derived.
package courses
