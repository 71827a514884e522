package sqlinline

const QListActiveKiosks = `--sql 61ccdcd0-1ebc-4172-90b6-fb92ccfc3f3c
select id, name, campus, address, is_active, created_at, updated_at
from kiosk_locations
where is_active
order by id;
`

const QSelectKiosk = `--sql 83541563-aa73-415f-9dc6-8aeafe428a22
select id, name, campus, address, is_active, created_at, updated_at
from kiosk_locations
where id = $1::bigint;
`

const QListActiveCloudKitchens = `--sql 60108832-dfc9-44b3-8cdb-36e143d7a311
select id, name, city, address, delivery_radius::float8, is_active, created_at, updated_at
from cloud_kitchens
where is_active
order by id;
`

const QSelectCloudKitchen = `--sql 20f22aea-9dfa-4369-8704-b0d3053ba318
select id, name, city, address, delivery_radius::float8, is_active, created_at, updated_at
from cloud_kitchens
where id = $1::bigint;
`
