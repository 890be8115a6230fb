package repository

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"hipoteca-grid/domain"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS strategy_results (
	id                   INTEGER PRIMARY KEY AUTOINCREMENT,
	idx                  INTEGER NOT NULL,
	amortizacion_inicial REAL NOT NULL,
	amortizacion_tipo    TEXT NOT NULL,
	amortizacion_valor   REAL NOT NULL,
	anios_amortizacion   INTEGER NOT NULL,
	intereses_estandar   REAL NOT NULL,
	intereses_estrategia REAL NOT NULL,
	ahorro_intereses     REAL NOT NULL,
	ahorro_porcentaje    REAL NOT NULL,
	cuota_inicial        REAL NOT NULL,
	cuota_final          REAL NOT NULL,
	provision_mensual    REAL NOT NULL
);`

// SQLiteSimulationRepository persiste resultados evaluados en una base
// SQLite local.
type SQLiteSimulationRepository struct {
	db *sql.DB
}

// NewSQLiteSimulationRepository opens (creating if needed) the SQLite
// database at dbPath and ensures the schema exists.
func NewSQLiteSimulationRepository(dbPath string) (*SQLiteSimulationRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &SQLiteSimulationRepository{db: db}, nil
}

// Close releases the underlying database handle.
func (r *SQLiteSimulationRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// Save inserts one evaluated result.
func (r *SQLiteSimulationRepository) Save(result domain.GridSearchResult) error {
	_, err := r.db.Exec(`
		INSERT INTO strategy_results (
			idx, amortizacion_inicial, amortizacion_tipo, amortizacion_valor,
			anios_amortizacion, intereses_estandar, intereses_estrategia,
			ahorro_intereses, ahorro_porcentaje, cuota_inicial, cuota_final,
			provision_mensual
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		result.Index,
		result.Strategy.InitialLumpSum,
		result.Strategy.Mode,
		result.Strategy.Magnitude,
		result.Strategy.Years,
		result.Savings.StandardInterest,
		result.Savings.StrategyInterest,
		result.Savings.InterestSavings,
		result.Savings.SavingsPercentage,
		result.Savings.InitialInstallment,
		result.Savings.FinalInstallment,
		result.Savings.MonthlyProvision,
	)
	if err != nil {
		return fmt.Errorf("insert strategy result: %w", err)
	}
	return nil
}

// List returns every stored result in insertion order.
func (r *SQLiteSimulationRepository) List() ([]domain.GridSearchResult, error) {
	rows, err := r.db.Query(`
		SELECT idx, amortizacion_inicial, amortizacion_tipo, amortizacion_valor,
			anios_amortizacion, intereses_estandar, intereses_estrategia,
			ahorro_intereses, ahorro_porcentaje, cuota_inicial, cuota_final,
			provision_mensual
		FROM strategy_results ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query strategy results: %w", err)
	}
	defer rows.Close()

	var results []domain.GridSearchResult
	for rows.Next() {
		var res domain.GridSearchResult
		if err := rows.Scan(
			&res.Index,
			&res.Strategy.InitialLumpSum,
			&res.Strategy.Mode,
			&res.Strategy.Magnitude,
			&res.Strategy.Years,
			&res.Savings.StandardInterest,
			&res.Savings.StrategyInterest,
			&res.Savings.InterestSavings,
			&res.Savings.SavingsPercentage,
			&res.Savings.InitialInstallment,
			&res.Savings.FinalInstallment,
			&res.Savings.MonthlyProvision,
		); err != nil {
			return nil, fmt.Errorf("scan strategy result: %w", err)
		}
		results = append(results, res)
	}

	return results, rows.Err()
}
