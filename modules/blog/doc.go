// Package blog manages blog articles stored in blog-articulos.json and their
// generated static pages.
package blog
