package sqlinline

// QInsertOrderWithItems writes an order and its lines in one statement.
// $12..$14 are parallel arrays of dish id, quantity and unit price.
const QInsertOrderWithItems = `--sql eb2a0109-649d-47e4-920a-e1a6ae06e0a1
with new_order as (
    insert into orders (
        user_email, user_phone, order_type, location_id, total_amount,
        payment_method, payment_status, order_status,
        pickup_time, delivery_address, qr_code, created_at, updated_at
    )
    values (
        $1::text, $2::text, $3::text, $4::bigint, $5::numeric,
        $6::text, $7::text, $8::text,
        nullif($9::text, ''), nullif($10::text, ''), $11::text, now(), now()
    )
    returning id
), new_items as (
    insert into order_items (order_id, dish_id, quantity, price, created_at, updated_at)
    select new_order.id, line.dish_id, line.quantity, line.price, now(), now()
    from new_order,
         unnest($12::bigint[], $13::int[], $14::numeric[]) as line(dish_id, quantity, price)
    returning order_id
)
select id from new_order;
`

const QSelectOrder = `--sql a80a2b6f-a907-4924-b509-c70f3e2e7e99
select id, user_email, user_phone, order_type, location_id, total_amount::float8,
       payment_method, payment_status, order_status,
       pickup_time, delivery_address, qr_code, created_at, updated_at
from orders
where id = $1::bigint;
`

const QListOrderItems = `--sql 08ed322d-8206-4130-8825-1a8af365dea4
select oi.id, oi.order_id, oi.dish_id, oi.quantity, oi.price::float8,
       d.name, d.image_url, oi.created_at, oi.updated_at
from order_items oi
join dishes d on d.id = oi.dish_id
where oi.order_id = $1::bigint
order by oi.id;
`
