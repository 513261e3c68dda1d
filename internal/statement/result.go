package statement

import "github.com/pocketbook-dev/pocketbook/internal/model"

// Result is the user-displayable outcome of a statement import. This is the
// one boundary where errors are absorbed into a value instead of returned:
// the caller shows the failure and moves on rather than aborting.
type Result struct {
	Transactions []model.ProcessedTransaction
	Success      bool
	Err          error
}

// ParseStatementFile parses one file into a Result.
func (p *Parser) ParseStatementFile(path string) Result {
	txns, err := p.ParseFile(path)
	if err != nil {
		return Result{Success: false, Err: err}
	}
	return Result{Transactions: txns, Success: true}
}

// ParseStatementFiles parses many files into one Result.
func (p *Parser) ParseStatementFiles(paths []string) Result {
	txns, err := p.ParseFiles(paths)
	if err != nil {
		return Result{Success: false, Err: err}
	}
	return Result{Transactions: txns, Success: true}
}
