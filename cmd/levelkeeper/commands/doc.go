// Package commands defines the levelkeeper CLI and wires dependencies for subcommands.
//
// Commands
//
//   - show <id>              Print one member's progression
//   - list                   Print every tracked member
//   - add-xp <id> <n>        Add experience, creating the member if needed
//   - reduce-xp <id> <n>     Remove experience, possibly dropping a level
//   - set-xp <id> <n>        Overwrite experience
//   - add-level <id> <n>     Raise the level (capped at 50)
//   - reduce-level <id> <n>  Lower the level (floored at 1)
//   - set-level <id> <n>     Overwrite the level
//   - add-currency <id> <n>  Credit currency
//   - spend <id> <n>         Debit currency if the balance allows
//   - set-currency <id> <n>  Overwrite currency
//   - threshold <level>      Print the experience needed to leave a level
//   - export <file>          Write a passphrase sealed backup of the table
//   - import <file>          Replace the table from a sealed backup
//   - flush                  Rewrite the member document from memory
//   - serve                  Run the read-only HTTP API and /metrics
//
// # Implementation
//
// The root command reads the environment configuration and builds the
// dependency graph (logger, metrics, member document, progression service)
// before any subcommand runs. --data overrides DATA_FILE_PATH.
package commands
