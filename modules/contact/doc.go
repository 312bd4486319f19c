// Package contact handles public contact-form submissions and forwards them
// by mail to the site operators.
package contact
