package catalog

import "github.com/sapiens-sapiens/storefront/internal/core/domain"

var categories = []domain.Category{
	{Key: domain.CategoryAll, Label: "Tudo"},
	{Key: "hardware", Label: "Hardware"},
	{Key: "microcontroladores", Label: "Microcontroladores"},
	{Key: "sensores", Label: "Sensores"},
	{Key: "ferramentas", Label: "Ferramentas"},
	{Key: "software", Label: "Software"},
	{Key: "licencas", Label: "Licenças"},
	{Key: "cursos", Label: "Cursos"},
	{Key: "apis", Label: "APIs"},
}

// Prices are centavos.
var products = []domain.Product{
	{
		ProductID:   "esp32-devkit-v1",
		Name:        "ESP32 DevKit v1",
		Category:    "microcontroladores",
		Price:       5990,
		Description: "Wi-Fi + Bluetooth, dual-core, excelente para IoT.",
		Tags:        []string{"esp", "wifi", "bluetooth", "iot"},
	},
	{
		ProductID:   "arduino-uno-r3",
		Name:        "Arduino Uno R3",
		Category:    "microcontroladores",
		Price:       12990,
		Description: "Clássico para prototipagem e ensino.",
		Tags:        []string{"arduino", "avr", "prototipagem"},
	},
	{
		ProductID:   "raspberry-pi-pico-w",
		Name:        "Raspberry Pi Pico W",
		Category:    "microcontroladores",
		Price:       4990,
		Description: "RP2040 com Wi-Fi para projetos conectados.",
		Tags:        []string{"raspberry", "rp2040", "wifi"},
	},
	{
		ProductID:   "ds18b20",
		Name:        "Sensor de Temperatura DS18B20",
		Category:    "sensores",
		Price:       1990,
		Description: "Precisão e interface 1-Wire.",
		Tags:        []string{"temperatura", "1-wire", "impermeável"},
	},
	{
		ProductID:   "mpu-6050",
		Name:        "IMU MPU-6050 (Acelerômetro + Giroscópio)",
		Category:    "sensores",
		Price:       3490,
		Description: "Ideal para robótica e estabilização.",
		Tags:        []string{"imu", "inerciais", "acelerometro", "giroscopio"},
	},
	{
		ProductID:   "tfmini-s",
		Name:        "Sensor LIDAR TFmini-S",
		Category:    "sensores",
		Price:       27990,
		Description: "Medição de distância por laser, compacto.",
		Tags:        []string{"lidar", "distancia", "laser"},
	},
	{
		ProductID:   "fonte-30v5a",
		Name:        "Fonte de Bancada 30V/5A",
		Category:    "hardware",
		Price:       54990,
		Description: "Fonte estabilizada com display digital.",
		Tags:        []string{"fonte", "bancada", "laboratorio"},
	},
	{
		ProductID:   "osciloscopio-100mhz",
		Name:        "Osciloscópio Digital 100MHz",
		Category:    "hardware",
		Price:       249990,
		Description: "Ferramenta essencial para depuração de sinais.",
		Tags:        []string{"osciloscopio", "medicao", "sinais"},
	},
	{
		ProductID:   "protoboard-830",
		Name:        "Protoboard 830 pontos",
		Category:    "hardware",
		Price:       2490,
		Description: "Perfeito para prototipagem sem solda.",
		Tags:        []string{"protoboard", "prototipagem", "breadboard"},
	},
	{
		ProductID:   "estacao-solda-60w",
		Name:        "Estação de Solda 60W",
		Category:    "ferramentas",
		Price:       29990,
		Description: "Controle de temperatura e suporte para ferro.",
		Tags:        []string{"solda", "ferramentas"},
	},
	{
		ProductID:   "kit-chaves-25em1",
		Name:        "Kit de Chaves de Precisão 25 em 1",
		Category:    "ferramentas",
		Price:       5990,
		Description: "Manutenção de eletrônicos e microparafusos.",
		Tags:        []string{"chave", "ferramentas", "manutencao"},
	},
	{
		ProductID:   "ide-mcu-premium",
		Name:        "IDE Premium p/ Microcontroladores (anual)",
		Category:    "software",
		Price:       39900,
		Description: "Autocompletar, debug, instrumentação e perfis.",
		Tags:        []string{"ide", "debug", "ferramenta", "editor"},
	},
	{
		ProductID:   "simulador-circuitos-pro",
		Name:        "Simulador de Circuitos Pro (mensal)",
		Category:    "software",
		Price:       4900,
		Description: "Simulações SPICE e mistas com precisão.",
		Tags:        []string{"simulador", "spice", "circuitos"},
	},
	{
		ProductID:   "lic-dsp-toolkit",
		Name:        "Licença DSP Toolkit Pro (anual)",
		Category:    "licencas",
		Price:       99900,
		Description: "Bibliotecas otimizadas e exemplos prontos.",
		Tags:        []string{"dsp", "licenca", "sinal"},
	},
	{
		ProductID:   "lic-arm-gcc-pro",
		Name:        "Compilador ARM GCC Pro (suporte)",
		Category:    "licencas",
		Price:       19900,
		Description: "Toolchain com suporte prioritário.",
		Tags:        []string{"arm", "gcc", "compilador", "licenca"},
	},
	{
		ProductID:   "curso-esp32-zero-pro",
		Name:        "Curso ESP32: Do Zero ao Pro",
		Category:    "cursos",
		Price:       29900,
		Description: "Wi-Fi, BLE, FreeRTOS e integração em nuvem.",
		Tags:        []string{"curso", "esp32", "iot", "freertos"},
	},
	{
		ProductID:   "curso-eletronica-analogica",
		Name:        "Eletrônica Analógica Essencial",
		Category:    "cursos",
		Price:       19900,
		Description: "Amplificadores, filtros e fontes.",
		Tags:        []string{"curso", "analogica", "filtros"},
	},
	{
		ProductID:   "curso-pcb-kicad",
		Name:        "PCB Design com KiCad",
		Category:    "cursos",
		Price:       24900,
		Description: "Da esquemática ao layout e fabricação.",
		Tags:        []string{"curso", "pcb", "kicad", "layout"},
	},
	{
		ProductID:   "api-iot-1m",
		Name:        "API IoT Messaging (1M msgs/mês)",
		Category:    "apis",
		Price:       4900,
		Description: "MQTT/HTTP, QoS e métricas.",
		Tags:        []string{"api", "iot", "mqtt", "mensagens"},
	},
	{
		ProductID:   "api-visao-10k",
		Name:        "API de Visão (10k req/mês)",
		Category:    "apis",
		Price:       9900,
		Description: "Detecção de objetos e OCR.",
		Tags:        []string{"api", "visao", "ocr", "ml"},
	},
}
