// Package cli implements the interactive terminal front end of weightkeeper.
//
// The App holds no state besides its I/O handles: the signed-in account is
// read from the session table on every command, so a session survives a
// restart.
//
// Commands
//
//	register                       create an account and sign in
//	login                          sign in
//	whoami                         show the current account and progress
//	goal <n>                       set a new goal weight
//	goals                          list every goal set so far
//	target <YYYY-MM-DD>            set the target date of the current goal
//	add <n>                        record today's weight
//	list [date]                    list entries, optionally sorted by date
//	delete <weight> <goal> <date>  delete matching entries
//	passwd                         change the password
//	help                           show commands
//	exit | quit                    leave
package cli
