package sqlinline

// Macro columns are jsonb so numbers and free text survive round trips; they
// are selected as their JSON text.
const QListAvailableDishes = `--sql 02136606-9c08-4dba-bf38-396177da71da
select id, name, description,
       calories::text, protein::text, carbs::text, fats::text,
       price::float8, category,
       is_vegetarian, is_high_protein, is_low_calorie,
       image_url, available, created_at, updated_at
from dishes
where available
order by id;
`

const QSelectDishPrices = `--sql 7e894a9e-684f-4bb6-b858-bd546cf51f33
select id, price::float8
from dishes
where id = any($1::bigint[]);
`
