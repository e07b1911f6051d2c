package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kmateev/biz_admin_app/internal/apperrors"
	"github.com/kmateev/biz_admin_app/internal/core/domain"
	portsrepo "github.com/kmateev/biz_admin_app/internal/core/ports/repositories"
)

type PgxManagerRepository struct {
	pool *pgxpool.Pool
}

func NewManagerRepository(pool *pgxpool.Pool) portsrepo.ManagerRepository {
	return &PgxManagerRepository{pool: pool}
}

var _ portsrepo.ManagerRepository = (*PgxManagerRepository)(nil)

const managerColumns = `manager_id, name, email, phone, country, region, created_at, created_by, last_updated_at, last_updated_by`

func scanManager(row pgx.Row) (*domain.Manager, error) {
	var m domain.Manager
	err := row.Scan(
		&m.ManagerID, &m.Name, &m.Email, &m.Phone, &m.Country, &m.Region,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// replaceChannelsTx deletes and re-inserts the manager's channel assignments.
func replaceChannelsTx(ctx context.Context, tx pgx.Tx, managerID string, channels []domain.ChannelType) error {
	_, err := tx.Exec(ctx, `DELETE FROM manager_assignments WHERE manager_id = $1;`, managerID)
	if err != nil {
		return fmt.Errorf("failed to clear channel assignments for manager %s: %w", managerID, err)
	}
	if len(channels) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, ch := range channels {
		batch.Queue(`INSERT INTO manager_assignments (manager_id, channel) VALUES ($1, $2);`, managerID, string(ch))
	}
	br := tx.SendBatch(ctx, batch)
	defer br.Close()
	for range channels {
		if _, err := br.Exec(); err != nil {
			if appErr := translatePgError(err); appErr != nil {
				return appErr
			}
			return fmt.Errorf("failed to insert channel assignment for manager %s: %w", managerID, err)
		}
	}
	return nil
}

func (r *PgxManagerRepository) SaveManager(ctx context.Context, m domain.Manager) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO managers (` + managerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err = tx.Exec(ctx, query,
		m.ManagerID, m.Name, m.Email, m.Phone, m.Country, m.Region,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if appErr := translatePgError(err); appErr != nil {
			return fmt.Errorf("%w: manager %s", appErr, m.Email)
		}
		return fmt.Errorf("failed to save manager %s: %w", m.ManagerID, err)
	}

	if err := replaceChannelsTx(ctx, tx, m.ManagerID, m.Channels); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit manager save: %w", err)
	}
	return nil
}

func (r *PgxManagerRepository) FindManagerByID(ctx context.Context, managerID string) (*domain.Manager, error) {
	query := `SELECT ` + managerColumns + ` FROM managers WHERE manager_id = $1;`
	m, err := scanManager(r.pool.QueryRow(ctx, query, managerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find manager %s: %w", managerID, err)
	}

	channels, err := r.findChannels(ctx, managerID)
	if err != nil {
		return nil, err
	}
	m.Channels = channels
	return m, nil
}

func (r *PgxManagerRepository) findChannels(ctx context.Context, managerID string) ([]domain.ChannelType, error) {
	rows, err := r.pool.Query(ctx, `SELECT channel FROM manager_assignments WHERE manager_id = $1 ORDER BY channel;`, managerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query channel assignments for manager %s: %w", managerID, err)
	}
	defer rows.Close()

	channels := []domain.ChannelType{}
	for rows.Next() {
		var ch string
		if err := rows.Scan(&ch); err != nil {
			return nil, fmt.Errorf("failed to scan channel assignment row: %w", err)
		}
		channels = append(channels, domain.ChannelType(ch))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating channel assignment rows: %w", rows.Err())
	}
	return channels, nil
}

func (r *PgxManagerRepository) ListManagers(ctx context.Context) ([]domain.Manager, error) {
	query := `SELECT ` + managerColumns + ` FROM managers ORDER BY name;`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query managers: %w", err)
	}
	defer rows.Close()

	managers := []domain.Manager{}
	for rows.Next() {
		m, err := scanManager(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan manager row: %w", err)
		}
		managers = append(managers, *m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating manager rows: %w", rows.Err())
	}

	if len(managers) == 0 {
		return managers, nil
	}

	ids := make([]string, 0, len(managers))
	index := make(map[string]int, len(managers))
	for i, m := range managers {
		ids = append(ids, m.ManagerID)
		index[m.ManagerID] = i
	}
	chRows, err := r.pool.Query(ctx, `SELECT manager_id, channel FROM manager_assignments WHERE manager_id = ANY($1) ORDER BY channel;`, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to query channel assignments: %w", err)
	}
	defer chRows.Close()
	for chRows.Next() {
		var managerID, ch string
		if err := chRows.Scan(&managerID, &ch); err != nil {
			return nil, fmt.Errorf("failed to scan channel assignment row: %w", err)
		}
		if i, ok := index[managerID]; ok {
			managers[i].Channels = append(managers[i].Channels, domain.ChannelType(ch))
		}
	}
	if chRows.Err() != nil {
		return nil, fmt.Errorf("error iterating channel assignment rows: %w", chRows.Err())
	}

	return managers, nil
}

func (r *PgxManagerRepository) UpdateManager(ctx context.Context, m domain.Manager) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		UPDATE managers
		SET name = $2, email = $3, phone = $4, country = $5, region = $6,
		    last_updated_at = $7, last_updated_by = $8
		WHERE manager_id = $1;
	`
	cmdTag, err := tx.Exec(ctx, query,
		m.ManagerID, m.Name, m.Email, m.Phone, m.Country, m.Region,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if appErr := translatePgError(err); appErr != nil {
			return appErr
		}
		return fmt.Errorf("failed to update manager %s: %w", m.ManagerID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if err := replaceChannelsTx(ctx, tx, m.ManagerID, m.Channels); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit manager update: %w", err)
	}
	return nil
}

func (r *PgxManagerRepository) DeleteManager(ctx context.Context, managerID string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `DELETE FROM manager_assignments WHERE manager_id = $1;`, managerID)
	if err != nil {
		return fmt.Errorf("failed to delete channel assignments for manager %s: %w", managerID, err)
	}

	cmdTag, err := tx.Exec(ctx, `DELETE FROM managers WHERE manager_id = $1;`, managerID)
	if err != nil {
		if appErr := translatePgError(err); appErr != nil {
			return appErr
		}
		return fmt.Errorf("failed to delete manager %s: %w", managerID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return tx.Commit(ctx)
}

type PgxSalesRepRepository struct {
	pool *pgxpool.Pool
}

func NewSalesRepRepository(pool *pgxpool.Pool) portsrepo.SalesRepRepository {
	return &PgxSalesRepRepository{pool: pool}
}

var _ portsrepo.SalesRepRepository = (*PgxSalesRepRepository)(nil)

const salesRepColumns = `rep_id, name, email, phone, country, region, manager_id, created_at, created_by, last_updated_at, last_updated_by`

func scanSalesRep(row pgx.Row) (*domain.SalesRep, error) {
	var rep domain.SalesRep
	var managerID *string
	err := row.Scan(
		&rep.RepID, &rep.Name, &rep.Email, &rep.Phone, &rep.Country, &rep.Region, &managerID,
		&rep.CreatedAt, &rep.CreatedBy, &rep.LastUpdatedAt, &rep.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	if managerID != nil {
		rep.ManagerID = *managerID
	}
	return &rep, nil
}

func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func (r *PgxSalesRepRepository) SaveSalesRep(ctx context.Context, rep domain.SalesRep) error {
	query := `
		INSERT INTO sales_reps (` + salesRepColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.pool.Exec(ctx, query,
		rep.RepID, rep.Name, rep.Email, rep.Phone, rep.Country, rep.Region, nullableString(rep.ManagerID),
		rep.CreatedAt, rep.CreatedBy, rep.LastUpdatedAt, rep.LastUpdatedBy,
	)
	if err != nil {
		if appErr := translatePgError(err); appErr != nil {
			return fmt.Errorf("%w: sales rep %s", appErr, rep.Email)
		}
		return fmt.Errorf("failed to save sales rep %s: %w", rep.RepID, err)
	}
	return nil
}

func (r *PgxSalesRepRepository) FindSalesRepByID(ctx context.Context, repID string) (*domain.SalesRep, error) {
	query := `SELECT ` + salesRepColumns + ` FROM sales_reps WHERE rep_id = $1;`
	rep, err := scanSalesRep(r.pool.QueryRow(ctx, query, repID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find sales rep %s: %w", repID, err)
	}
	return rep, nil
}

func (r *PgxSalesRepRepository) ListSalesReps(ctx context.Context, country string) ([]domain.SalesRep, error) {
	query := `SELECT ` + salesRepColumns + ` FROM sales_reps`
	args := []any{}
	if country != "" {
		query += ` WHERE country = $1`
		args = append(args, country)
	}
	query += ` ORDER BY name;`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query sales reps: %w", err)
	}
	defer rows.Close()

	reps := []domain.SalesRep{}
	for rows.Next() {
		rep, err := scanSalesRep(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sales rep row: %w", err)
		}
		reps = append(reps, *rep)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating sales rep rows: %w", rows.Err())
	}
	return reps, nil
}

func (r *PgxSalesRepRepository) UpdateSalesRep(ctx context.Context, rep domain.SalesRep) error {
	query := `
		UPDATE sales_reps
		SET name = $2, email = $3, phone = $4, country = $5, region = $6, manager_id = $7,
		    last_updated_at = $8, last_updated_by = $9
		WHERE rep_id = $1;
	`
	cmdTag, err := r.pool.Exec(ctx, query,
		rep.RepID, rep.Name, rep.Email, rep.Phone, rep.Country, rep.Region, nullableString(rep.ManagerID),
		rep.LastUpdatedAt, rep.LastUpdatedBy,
	)
	if err != nil {
		if appErr := translatePgError(err); appErr != nil {
			return appErr
		}
		return fmt.Errorf("failed to update sales rep %s: %w", rep.RepID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxSalesRepRepository) DeleteSalesRep(ctx context.Context, repID string) error {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM sales_reps WHERE rep_id = $1;`, repID)
	if err != nil {
		if appErr := translatePgError(err); appErr != nil {
			return fmt.Errorf("%w: sales rep is still referenced", appErr)
		}
		return fmt.Errorf("failed to delete sales rep %s: %w", repID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

type PgxClientRepository struct {
	pool *pgxpool.Pool
}

func NewClientRepository(pool *pgxpool.Pool) portsrepo.ClientRepository {
	return &PgxClientRepository{pool: pool}
}

var _ portsrepo.ClientRepository = (*PgxClientRepository)(nil)

const clientColumns = `client_id, name, country, region, address, rep_id, created_at, created_by, last_updated_at, last_updated_by`

func scanClient(row pgx.Row) (*domain.Client, error) {
	var c domain.Client
	var repID *string
	err := row.Scan(
		&c.ClientID, &c.Name, &c.Country, &c.Region, &c.Address, &repID,
		&c.CreatedAt, &c.CreatedBy, &c.LastUpdatedAt, &c.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	if repID != nil {
		c.RepID = *repID
	}
	return &c, nil
}

func (r *PgxClientRepository) SaveClient(ctx context.Context, c domain.Client) error {
	query := `
		INSERT INTO clients (` + clientColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.pool.Exec(ctx, query,
		c.ClientID, c.Name, c.Country, c.Region, c.Address, nullableString(c.RepID),
		c.CreatedAt, c.CreatedBy, c.LastUpdatedAt, c.LastUpdatedBy,
	)
	if err != nil {
		if appErr := translatePgError(err); appErr != nil {
			return fmt.Errorf("%w: client %s", appErr, c.Name)
		}
		return fmt.Errorf("failed to save client %s: %w", c.ClientID, err)
	}
	return nil
}

func (r *PgxClientRepository) FindClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE client_id = $1;`
	c, err := scanClient(r.pool.QueryRow(ctx, query, clientID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find client %s: %w", clientID, err)
	}
	return c, nil
}

func (r *PgxClientRepository) ListClients(ctx context.Context, country string) ([]domain.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients`
	args := []any{}
	if country != "" {
		query += ` WHERE country = $1`
		args = append(args, country)
	}
	query += ` ORDER BY name;`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query clients: %w", err)
	}
	defer rows.Close()

	clients := []domain.Client{}
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan client row: %w", err)
		}
		clients = append(clients, *c)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating client rows: %w", rows.Err())
	}
	return clients, nil
}

func (r *PgxClientRepository) UpdateClient(ctx context.Context, c domain.Client) error {
	query := `
		UPDATE clients
		SET name = $2, country = $3, region = $4, address = $5, rep_id = $6,
		    last_updated_at = $7, last_updated_by = $8
		WHERE client_id = $1;
	`
	cmdTag, err := r.pool.Exec(ctx, query,
		c.ClientID, c.Name, c.Country, c.Region, c.Address, nullableString(c.RepID),
		c.LastUpdatedAt, c.LastUpdatedBy,
	)
	if err != nil {
		if appErr := translatePgError(err); appErr != nil {
			return appErr
		}
		return fmt.Errorf("failed to update client %s: %w", c.ClientID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxClientRepository) DeleteClient(ctx context.Context, clientID string) error {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM clients WHERE client_id = $1;`, clientID)
	if err != nil {
		if appErr := translatePgError(err); appErr != nil {
			return fmt.Errorf("%w: client is still referenced", appErr)
		}
		return fmt.Errorf("failed to delete client %s: %w", clientID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
