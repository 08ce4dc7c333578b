/*
Package postgres connects enum fields to a PostgreSQL database through GORM.

It manages the database connection, and it treats enum lookup tables as
first-class: Seed creates and fills a lookup table from a static declaration,
LoadSource reads one back as a Records declaration whose members are full
rows, and RegisterValidation installs a save-time callback that rejects
records failing their declared validation rules.
*/
package postgres
