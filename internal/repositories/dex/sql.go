package dex

import (
	"context"
	"database/sql"
	"strconv"
	"strings"

	"github.com/Leo-Expose/PokeBase/internal/errors"
)

type dialect int

const (
	dialectSQLite dialect = iota
	dialectPostgres
)

// rebind rewrites `?` placeholders to `$n` for postgres. Query text in this
// package is written once in sqlite style and rebound per driver.
func (d dialect) rebind(query string) string {
	if d != dialectPostgres {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// SQLRepository implements Repository over a relational copy of the veekun
// reference schema. It holds no state beyond the pooled connection handle and
// issues only read queries, so it is safe for unbounded concurrent use.
type SQLRepository struct {
	db      *sql.DB
	dialect dialect
}

// SQLConfig holds the dependencies for the SQL repository
type SQLConfig struct {
	DB *sql.DB
}

// Validate ensures all required dependencies are provided
func (c *SQLConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.DB == nil {
		vb.RequiredField("DB")
	}

	return vb.Build()
}

func newSQLRepository(cfg *SQLConfig, d dialect) (*SQLRepository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &SQLRepository{db: cfg.DB, dialect: d}, nil
}

// GetForm resolves a form by exact identifier match
func (r *SQLRepository) GetForm(ctx context.Context, input GetFormInput) (*GetFormOutput, error) {
	query := r.dialect.rebind(`
		SELECT p.id, p.identifier, p.species_id, p.is_default,
		       COALESCE(pfn.pokemon_name, ''),
		       COALESCE(psn.name, '')
		FROM pokemon p
		LEFT JOIN pokemon_forms pf
		       ON pf.pokemon_id = p.id
		LEFT JOIN pokemon_form_names pfn
		       ON pfn.pokemon_form_id = pf.id
		      AND pfn.local_language_id = ?
		LEFT JOIN pokemon_species_names psn
		       ON psn.pokemon_species_id = p.species_id
		      AND psn.local_language_id = ?
		WHERE p.identifier = ?
		LIMIT 1`)

	var f Form
	err := r.db.QueryRowContext(ctx, query, input.LanguageID, input.LanguageID, input.Identifier).
		Scan(&f.ID, &f.Identifier, &f.SpeciesID, &f.IsDefault, &f.FormName, &f.SpeciesName)
	if err == sql.ErrNoRows {
		return nil, errors.NotFoundf("pokemon %q not found", input.Identifier)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch form")
	}

	return &GetFormOutput{Form: &f}, nil
}

// ListStats fetches a form's base stats in stat id order
func (r *SQLRepository) ListStats(ctx context.Context, input ListStatsInput) (*ListStatsOutput, error) {
	query := r.dialect.rebind(`
		SELECT ps.stat_id, s.identifier, COALESCE(sn.name, ''), ps.base_stat
		FROM pokemon_stats ps
		JOIN stats s ON s.id = ps.stat_id
		LEFT JOIN stat_names sn
		       ON sn.stat_id = s.id AND sn.local_language_id = ?
		WHERE ps.pokemon_id = ?
		ORDER BY ps.stat_id`)

	rows, err := r.db.QueryContext(ctx, query, input.LanguageID, input.FormID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch stats")
	}
	defer func() { _ = rows.Close() }()

	out := &ListStatsOutput{}
	for rows.Next() {
		var s StatRow
		if err := rows.Scan(&s.StatID, &s.Identifier, &s.Name, &s.BaseStat); err != nil {
			return nil, errors.Wrap(err, "failed to scan stat row")
		}
		out.Stats = append(out.Stats, s)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to iterate stat rows")
	}

	return out, nil
}

// GetStatBounds fetches the dex-wide min/max per stat category
func (r *SQLRepository) GetStatBounds(ctx context.Context, _ GetStatBoundsInput) (*GetStatBoundsOutput, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT stat_id, MIN(base_stat), MAX(base_stat)
		FROM pokemon_stats
		GROUP BY stat_id`)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch stat bounds")
	}
	defer func() { _ = rows.Close() }()

	out := &GetStatBoundsOutput{Bounds: make(map[int64]StatBounds)}
	for rows.Next() {
		var id int64
		var b StatBounds
		if err := rows.Scan(&id, &b.Min, &b.Max); err != nil {
			return nil, errors.Wrap(err, "failed to scan stat bounds")
		}
		out.Bounds[id] = b
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to iterate stat bounds")
	}

	return out, nil
}

// ListTypes fetches a form's types in slot order
func (r *SQLRepository) ListTypes(ctx context.Context, input ListTypesInput) (*ListTypesOutput, error) {
	query := r.dialect.rebind(`
		SELECT ty.id, ty.identifier, COALESCE(tn.name, '')
		FROM pokemon_types pt
		JOIN types ty ON ty.id = pt.type_id
		LEFT JOIN type_names tn
		       ON tn.type_id = ty.id AND tn.local_language_id = ?
		WHERE pt.pokemon_id = ?
		ORDER BY pt.slot`)

	rows, err := r.db.QueryContext(ctx, query, input.LanguageID, input.FormID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch types")
	}
	defer func() { _ = rows.Close() }()

	out := &ListTypesOutput{}
	for rows.Next() {
		var t TypeRow
		if err := rows.Scan(&t.ID, &t.Identifier, &t.Name); err != nil {
			return nil, errors.Wrap(err, "failed to scan type row")
		}
		out.Types = append(out.Types, t)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to iterate type rows")
	}

	return out, nil
}

// ListAllTypes fetches every damage type ordered by id
func (r *SQLRepository) ListAllTypes(ctx context.Context, input ListAllTypesInput) (*ListAllTypesOutput, error) {
	query := r.dialect.rebind(`
		SELECT t.id, t.identifier, COALESCE(tn.name, '')
		FROM types t
		LEFT JOIN type_names tn
		       ON tn.type_id = t.id AND tn.local_language_id = ?
		ORDER BY t.id`)

	rows, err := r.db.QueryContext(ctx, query, input.LanguageID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch all types")
	}
	defer func() { _ = rows.Close() }()

	out := &ListAllTypesOutput{}
	for rows.Next() {
		var t TypeRow
		if err := rows.Scan(&t.ID, &t.Identifier, &t.Name); err != nil {
			return nil, errors.Wrap(err, "failed to scan type row")
		}
		out.Types = append(out.Types, t)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to iterate type rows")
	}

	return out, nil
}

// ListEfficacy fetches damage factors targeting the given types
func (r *SQLRepository) ListEfficacy(ctx context.Context, input ListEfficacyInput) (*ListEfficacyOutput, error) {
	if len(input.TargetTypeIDs) == 0 {
		return &ListEfficacyOutput{}, nil
	}

	placeholders := make([]string, len(input.TargetTypeIDs))
	args := make([]interface{}, len(input.TargetTypeIDs))
	for i, id := range input.TargetTypeIDs {
		placeholders[i] = "?"
		args[i] = id
	}
	query := r.dialect.rebind(`
		SELECT damage_type_id, target_type_id, damage_factor
		FROM type_efficacy
		WHERE target_type_id IN (` + strings.Join(placeholders, ",") + `)`)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch type efficacy")
	}
	defer func() { _ = rows.Close() }()

	out := &ListEfficacyOutput{}
	for rows.Next() {
		var e EfficacyRow
		if err := rows.Scan(&e.DamageTypeID, &e.TargetTypeID, &e.DamageFactor); err != nil {
			return nil, errors.Wrap(err, "failed to scan efficacy row")
		}
		out.Rows = append(out.Rows, e)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to iterate efficacy rows")
	}

	return out, nil
}

// ListAbilities fetches a form's abilities in slot order
func (r *SQLRepository) ListAbilities(ctx context.Context, input ListAbilitiesInput) (*ListAbilitiesOutput, error) {
	query := r.dialect.rebind(`
		SELECT a.identifier, COALESCE(an.name, ''), pa.is_hidden,
		       COALESCE((
		           SELECT aft.flavor_text
		           FROM ability_flavor_text aft
		           WHERE aft.ability_id = a.id
		             AND aft.language_id = ?
		           ORDER BY aft.version_group_id DESC
		           LIMIT 1
		       ), '')
		FROM pokemon_abilities pa
		JOIN abilities a ON a.id = pa.ability_id
		LEFT JOIN ability_names an
		       ON an.ability_id = a.id AND an.local_language_id = ?
		WHERE pa.pokemon_id = ?
		ORDER BY pa.slot`)

	rows, err := r.db.QueryContext(ctx, query, input.LanguageID, input.LanguageID, input.FormID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch abilities")
	}
	defer func() { _ = rows.Close() }()

	out := &ListAbilitiesOutput{}
	for rows.Next() {
		var a AbilityRow
		if err := rows.Scan(&a.Identifier, &a.Name, &a.IsHidden, &a.FlavorText); err != nil {
			return nil, errors.Wrap(err, "failed to scan ability row")
		}
		out.Abilities = append(out.Abilities, a)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to iterate ability rows")
	}

	return out, nil
}

// GetSpecies fetches the species-level profile
func (r *SQLRepository) GetSpecies(ctx context.Context, input GetSpeciesInput) (*GetSpeciesOutput, error) {
	query := r.dialect.rebind(`
		SELECT ps.id, ps.identifier, ps.evolution_chain_id,
		       ps.capture_rate, ps.base_happiness,
		       COALESCE(grp.name, gr.identifier),
		       gn.name, rn.name
		FROM pokemon_species ps
		LEFT JOIN growth_rates gr ON gr.id = ps.growth_rate_id
		LEFT JOIN growth_rate_prose grp
		       ON grp.growth_rate_id = gr.id AND grp.local_language_id = ?
		LEFT JOIN generations g ON g.id = ps.generation_id
		LEFT JOIN generation_names gn
		       ON gn.generation_id = g.id AND gn.local_language_id = ?
		LEFT JOIN regions reg ON reg.id = g.main_region_id
		LEFT JOIN region_names rn
		       ON rn.region_id = reg.id AND rn.local_language_id = ?
		WHERE ps.id = ?`)

	var s SpeciesRow
	var chainID, captureRate, baseHappiness sql.NullInt64
	var growthRate, generation, region sql.NullString
	err := r.db.QueryRowContext(ctx, query,
		input.LanguageID, input.LanguageID, input.LanguageID, input.SpeciesID,
	).Scan(&s.ID, &s.Identifier, &chainID, &captureRate, &baseHappiness,
		&growthRate, &generation, &region)
	if err == sql.ErrNoRows {
		return &GetSpeciesOutput{}, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch species")
	}

	s.EvolutionChainID = nullInt64Ptr(chainID)
	s.CaptureRate = nullIntPtr(captureRate)
	s.BaseHappiness = nullIntPtr(baseHappiness)
	s.GrowthRate = nullStringPtr(growthRate)
	s.Generation = nullStringPtr(generation)
	s.Region = nullStringPtr(region)

	return &GetSpeciesOutput{Species: &s}, nil
}

// ListEvolutions fetches a chain's raw evolution edges
func (r *SQLRepository) ListEvolutions(ctx context.Context, input ListEvolutionsInput) (*ListEvolutionsOutput, error) {
	query := r.dialect.rebind(`
		SELECT from_ps.id, from_ps.identifier, from_psn.name,
		       to_ps.id, to_ps.identifier, COALESCE(to_psn.name, ''),
		       COALESCE(et.identifier, ''),
		       e.minimum_level, e.minimum_happiness,
		       COALESCE(e.time_of_day, ''),
		       itn.name, hitn.name, kmn.name
		FROM pokemon_evolution e
		JOIN pokemon_species to_ps
		     ON to_ps.id = e.evolved_species_id
		LEFT JOIN pokemon_species from_ps
		     ON from_ps.id = to_ps.evolves_from_species_id
		LEFT JOIN pokemon_species_names to_psn
		     ON to_psn.pokemon_species_id = to_ps.id
		    AND to_psn.local_language_id = ?
		LEFT JOIN pokemon_species_names from_psn
		     ON from_psn.pokemon_species_id = from_ps.id
		    AND from_psn.local_language_id = ?
		LEFT JOIN evolution_triggers et
		       ON et.id = e.evolution_trigger_id
		LEFT JOIN items it ON it.id = e.trigger_item_id
		LEFT JOIN item_names itn
		       ON itn.item_id = it.id AND itn.local_language_id = ?
		LEFT JOIN items hit ON hit.id = e.held_item_id
		LEFT JOIN item_names hitn
		       ON hitn.item_id = hit.id AND hitn.local_language_id = ?
		LEFT JOIN moves km ON km.id = e.known_move_id
		LEFT JOIN move_names kmn
		       ON kmn.move_id = km.id AND kmn.local_language_id = ?
		WHERE to_ps.evolution_chain_id = ?
		ORDER BY to_ps.id`)

	rows, err := r.db.QueryContext(ctx, query,
		input.LanguageID, input.LanguageID, input.LanguageID,
		input.LanguageID, input.LanguageID, input.ChainID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch evolution edges")
	}
	defer func() { _ = rows.Close() }()

	out := &ListEvolutionsOutput{}
	for rows.Next() {
		var edge EvolutionRow
		var fromID sql.NullInt64
		var fromIdent, fromName sql.NullString
		var minLevel, minHappiness sql.NullInt64
		var itemName, heldItemName, knownMoveName sql.NullString

		if err := rows.Scan(
			&fromID, &fromIdent, &fromName,
			&edge.To.ID, &edge.To.Identifier, &edge.To.Name,
			&edge.TriggerIdentifier,
			&minLevel, &minHappiness, &edge.TimeOfDay,
			&itemName, &heldItemName, &knownMoveName,
		); err != nil {
			return nil, errors.Wrap(err, "failed to scan evolution row")
		}

		if fromID.Valid {
			edge.From = &SpeciesRef{
				ID:         fromID.Int64,
				Identifier: fromIdent.String,
				Name:       fromName.String,
			}
		}
		edge.MinimumLevel = nullIntPtr(minLevel)
		edge.MinimumHappiness = nullIntPtr(minHappiness)
		edge.ItemName = nullStringPtr(itemName)
		edge.HeldItemName = nullStringPtr(heldItemName)
		edge.KnownMoveName = nullStringPtr(knownMoveName)

		out.Edges = append(out.Edges, edge)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to iterate evolution rows")
	}

	return out, nil
}

// ListEggGroups fetches a species' localized egg group names
func (r *SQLRepository) ListEggGroups(ctx context.Context, input ListEggGroupsInput) (*ListEggGroupsOutput, error) {
	query := r.dialect.rebind(`
		SELECT egp.name
		FROM pokemon_egg_groups peg
		JOIN egg_group_prose egp
		     ON egp.egg_group_id = peg.egg_group_id
		    AND egp.local_language_id = ?
		WHERE peg.species_id = ?
		ORDER BY peg.egg_group_id`)

	rows, err := r.db.QueryContext(ctx, query, input.LanguageID, input.SpeciesID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch egg groups")
	}
	defer func() { _ = rows.Close() }()

	out := &ListEggGroupsOutput{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, errors.Wrap(err, "failed to scan egg group row")
		}
		out.Names = append(out.Names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to iterate egg group rows")
	}

	return out, nil
}

// GetFlavorText fetches the latest flavor text for a species
func (r *SQLRepository) GetFlavorText(ctx context.Context, input GetFlavorTextInput) (*GetFlavorTextOutput, error) {
	query := r.dialect.rebind(`
		SELECT flavor_text
		FROM pokemon_species_flavor_text
		WHERE species_id = ?
		  AND language_id = ?
		ORDER BY version_id DESC
		LIMIT 1`)

	var text string
	err := r.db.QueryRowContext(ctx, query, input.SpeciesID, input.LanguageID).Scan(&text)
	if err == sql.ErrNoRows {
		return &GetFlavorTextOutput{}, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch flavor text")
	}

	return &GetFlavorTextOutput{Text: text}, nil
}

// ListMoves fetches a form's moves for one (version group, method) pair
func (r *SQLRepository) ListMoves(ctx context.Context, input ListMovesInput) (*ListMovesOutput, error) {
	query := r.dialect.rebind(`
		SELECT pm.level, m.identifier,
		       COALESCE(mn.name, m.identifier),
		       t.identifier, tn.name,
		       mdcp.name,
		       m.power, m.accuracy, m.pp,
		       COALESCE(mep.short_effect, '')
		FROM pokemon_moves pm
		JOIN moves m ON m.id = pm.move_id
		LEFT JOIN move_names mn
		       ON mn.move_id = m.id AND mn.local_language_id = ?
		LEFT JOIN types t ON t.id = m.type_id
		LEFT JOIN type_names tn
		       ON tn.type_id = t.id AND tn.local_language_id = ?
		LEFT JOIN move_damage_classes mdc
		       ON mdc.id = m.damage_class_id
		LEFT JOIN move_damage_class_prose mdcp
		       ON mdcp.move_damage_class_id = mdc.id
		      AND mdcp.local_language_id = ?
		LEFT JOIN move_effect_prose mep
		       ON mep.move_effect_id = m.effect_id
		      AND mep.local_language_id = ?
		WHERE pm.pokemon_id = ?
		  AND pm.version_group_id = ?
		  AND pm.pokemon_move_method_id = ?
		ORDER BY pm.level, m.identifier`)

	rows, err := r.db.QueryContext(ctx, query,
		input.LanguageID, input.LanguageID, input.LanguageID, input.LanguageID,
		input.FormID, input.VersionGroupID, input.MethodID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch moves")
	}
	defer func() { _ = rows.Close() }()

	out := &ListMovesOutput{}
	for rows.Next() {
		var m MoveRow
		var typeIdent, typeName, damageClass sql.NullString
		var power, accuracy, pp sql.NullInt64

		if err := rows.Scan(
			&m.Level, &m.Identifier, &m.Name,
			&typeIdent, &typeName, &damageClass,
			&power, &accuracy, &pp, &m.ShortEffect,
		); err != nil {
			return nil, errors.Wrap(err, "failed to scan move row")
		}

		m.TypeIdentifier = nullStringPtr(typeIdent)
		m.TypeName = nullStringPtr(typeName)
		m.DamageClassName = nullStringPtr(damageClass)
		m.Power = nullIntPtr(power)
		m.Accuracy = nullIntPtr(accuracy)
		m.PP = nullIntPtr(pp)

		out.Moves = append(out.Moves, m)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to iterate move rows")
	}

	return out, nil
}

// ListForms fetches every sibling form of a species
func (r *SQLRepository) ListForms(ctx context.Context, input ListFormsInput) (*ListFormsOutput, error) {
	query := r.dialect.rebind(`
		SELECT p.id, p.identifier, p.species_id, p.is_default,
		       COALESCE(pfn.pokemon_name, ''),
		       COALESCE(psn.name, '')
		FROM pokemon p
		LEFT JOIN pokemon_forms pf
		       ON pf.pokemon_id = p.id
		LEFT JOIN pokemon_form_names pfn
		       ON pfn.pokemon_form_id = pf.id
		      AND pfn.local_language_id = ?
		LEFT JOIN pokemon_species_names psn
		       ON psn.pokemon_species_id = p.species_id
		      AND psn.local_language_id = ?
		WHERE p.species_id = ?
		ORDER BY p.id`)

	rows, err := r.db.QueryContext(ctx, query, input.LanguageID, input.LanguageID, input.SpeciesID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch forms")
	}
	defer func() { _ = rows.Close() }()

	out := &ListFormsOutput{}
	for rows.Next() {
		var f Form
		if err := rows.Scan(&f.ID, &f.Identifier, &f.SpeciesID, &f.IsDefault, &f.FormName, &f.SpeciesName); err != nil {
			return nil, errors.Wrap(err, "failed to scan form row")
		}
		out.Forms = append(out.Forms, f)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to iterate form rows")
	}

	return out, nil
}

// ListEncounters fetches raw encounter rows up to the configured cap
func (r *SQLRepository) ListEncounters(ctx context.Context, input ListEncountersInput) (*ListEncountersOutput, error) {
	query := r.dialect.rebind(`
		SELECT vn.name, ln.name
		FROM encounters e
		JOIN location_areas la ON la.id = e.location_area_id
		JOIN locations l ON l.id = la.location_id
		JOIN location_names ln
		     ON ln.location_id = l.id AND ln.local_language_id = ?
		JOIN versions v ON v.id = e.version_id
		JOIN version_names vn
		     ON vn.version_id = v.id AND vn.local_language_id = ?
		WHERE e.pokemon_id = ?
		LIMIT ?`)

	rows, err := r.db.QueryContext(ctx, query, input.LanguageID, input.LanguageID, input.FormID, input.Limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch encounters")
	}
	defer func() { _ = rows.Close() }()

	out := &ListEncountersOutput{}
	for rows.Next() {
		var e EncounterRow
		if err := rows.Scan(&e.Version, &e.Location); err != nil {
			return nil, errors.Wrap(err, "failed to scan encounter row")
		}
		out.Rows = append(out.Rows, e)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to iterate encounter rows")
	}

	return out, nil
}

// GetAdjacentSpecies fetches prev/next species by ordinal id
func (r *SQLRepository) GetAdjacentSpecies(ctx context.Context, input GetAdjacentSpeciesInput) (*GetAdjacentSpeciesOutput, error) {
	prevQuery := r.dialect.rebind(`
		SELECT ps.id, ps.identifier, COALESCE(psn.name, '')
		FROM pokemon_species ps
		LEFT JOIN pokemon_species_names psn
		     ON psn.pokemon_species_id = ps.id
		    AND psn.local_language_id = ?
		WHERE ps.id < ?
		ORDER BY ps.id DESC
		LIMIT 1`)
	nextQuery := r.dialect.rebind(`
		SELECT ps.id, ps.identifier, COALESCE(psn.name, '')
		FROM pokemon_species ps
		LEFT JOIN pokemon_species_names psn
		     ON psn.pokemon_species_id = ps.id
		    AND psn.local_language_id = ?
		WHERE ps.id > ?
		ORDER BY ps.id ASC
		LIMIT 1`)

	out := &GetAdjacentSpeciesOutput{}

	var prev SpeciesRef
	err := r.db.QueryRowContext(ctx, prevQuery, input.LanguageID, input.SpeciesID).
		Scan(&prev.ID, &prev.Identifier, &prev.Name)
	switch {
	case err == sql.ErrNoRows:
		// dataset boundary
	case err != nil:
		return nil, errors.Wrap(err, "failed to fetch previous species")
	default:
		out.Prev = &prev
	}

	var next SpeciesRef
	err = r.db.QueryRowContext(ctx, nextQuery, input.LanguageID, input.SpeciesID).
		Scan(&next.ID, &next.Identifier, &next.Name)
	switch {
	case err == sql.ErrNoRows:
		// dataset boundary
	case err != nil:
		return nil, errors.Wrap(err, "failed to fetch next species")
	default:
		out.Next = &next
	}

	return out, nil
}

// Suggest fetches autocomplete candidates for a prefix
func (r *SQLRepository) Suggest(ctx context.Context, input SuggestInput) (*SuggestOutput, error) {
	query := r.dialect.rebind(`
		SELECT p.identifier,
		       COALESCE(pfn.pokemon_name, ''),
		       COALESCE(psn.name, '')
		FROM pokemon p
		LEFT JOIN pokemon_forms pf
		       ON pf.pokemon_id = p.id
		LEFT JOIN pokemon_form_names pfn
		       ON pfn.pokemon_form_id = pf.id
		      AND pfn.local_language_id = ?
		LEFT JOIN pokemon_species_names psn
		       ON psn.pokemon_species_id = p.species_id
		      AND psn.local_language_id = ?
		WHERE p.is_default = 1
		  AND (LOWER(p.identifier) LIKE ? OR LOWER(psn.name) LIKE ?)
		ORDER BY psn.name
		LIMIT ?`)

	like := strings.ToLower(input.Prefix) + "%"
	rows, err := r.db.QueryContext(ctx, query, input.LanguageID, input.LanguageID, like, like, input.Limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch suggestions")
	}
	defer func() { _ = rows.Close() }()

	out := &SuggestOutput{}
	for rows.Next() {
		var s SuggestionRow
		if err := rows.Scan(&s.Identifier, &s.FormName, &s.SpeciesName); err != nil {
			return nil, errors.Wrap(err, "failed to scan suggestion row")
		}
		out.Rows = append(out.Rows, s)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to iterate suggestion rows")
	}

	return out, nil
}

// GetRandomDefaultForm picks a random species' default form identifier
func (r *SQLRepository) GetRandomDefaultForm(ctx context.Context, _ GetRandomDefaultFormInput) (*GetRandomDefaultFormOutput, error) {
	var speciesID int64
	err := r.db.QueryRowContext(ctx, `SELECT id FROM pokemon_species ORDER BY RANDOM() LIMIT 1`).
		Scan(&speciesID)
	if err == sql.ErrNoRows {
		return &GetRandomDefaultFormOutput{}, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to pick random species")
	}

	query := r.dialect.rebind(`
		SELECT identifier
		FROM pokemon
		WHERE species_id = ? AND is_default = 1
		LIMIT 1`)

	var identifier string
	err = r.db.QueryRowContext(ctx, query, speciesID).Scan(&identifier)
	if err == sql.ErrNoRows {
		// species without a default form; the caller decides the fallback
		return &GetRandomDefaultFormOutput{}, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch default form")
	}

	return &GetRandomDefaultFormOutput{Identifier: identifier}, nil
}

func nullStringPtr(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}

func nullIntPtr(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	n := int(v.Int64)
	return &n
}

func nullInt64Ptr(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	n := v.Int64
	return &n
}
