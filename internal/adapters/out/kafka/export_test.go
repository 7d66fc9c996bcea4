package kafka

var NewOrderChangedProducerWithWriter = newOrderChangedProducer
